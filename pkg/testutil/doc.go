// Package testutil provides file fixtures and environment isolation for
// arbitrator tests.
//
// Tests that run the full command or load configuration should call
// Isolate first so that the user's config directory, log file and
// ARBITRATOR_* variables cannot change the outcome.
package testutil
