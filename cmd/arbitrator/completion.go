package arbitrator

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Shells lists the shells GenCompletion supports.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletion writes the completion script for shell to w.
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unknown shell %q", shell)
	}
}
