package arbitrator

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/arbitrator/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds the embedded help topics to root. Without them the
// default help command stays in place.
func installTopics(root *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
		return
	}

	tm, err := topics.New(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
		return
	}
	tm.Install(root)
}
