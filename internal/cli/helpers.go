package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/engine"
	"github.com/willowsc/willow/internal/match"
	"github.com/willowsc/willow/internal/rules"
	"github.com/willowsc/willow/internal/store"
)

// matchOptions holds the flags shared by every scoring command.
type matchOptions struct {
	*RootOptions
	Database string
	MatchID  string
}

// addMatchFlags registers the shared --db and --match flags.
func addMatchFlags(cmd *cobra.Command, opts *matchOptions) {
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.MatchID, "match", "", "match id (defaults to the most recently scored match)")
}

// formatter builds the output formatter for a command.
func formatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openMatch opens the store and loads the snapshot named by --match,
// defaulting to the most recently scored match. The caller owns closing
// the returned store.
func openMatch(ctx context.Context, opts *matchOptions) (*store.Store, match.State, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, match.State{}, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	matchID := opts.MatchID
	if matchID == "" {
		ids, err := st.ListMatches(ctx)
		if err != nil {
			st.Close()
			return nil, match.State{}, WrapExitError(ExitCommandError, "failed to list matches", err)
		}
		if len(ids) == 0 {
			st.Close()
			return nil, match.State{}, NewExitError(ExitCommandError, "no matches in database; run 'willow new' first")
		}
		matchID = ids[0]
	}

	state, err := st.LoadSnapshot(ctx, matchID)
	if err != nil {
		st.Close()
		return nil, match.State{}, WrapExitError(ExitCommandError, fmt.Sprintf("failed to load match %q", matchID), err)
	}

	return st, state, nil
}

// persist saves the snapshot and archives its event log.
func persist(ctx context.Context, st *store.Store, state match.State) error {
	if err := st.SaveSnapshot(ctx, state); err != nil {
		return WrapExitError(ExitCommandError, "failed to save match", err)
	}
	if err := st.AppendLog(ctx, state.MatchID, state.Log); err != nil {
		return WrapExitError(ExitCommandError, "failed to archive events", err)
	}
	return nil
}

// matchRules resolves the playing rules for a persisted state.
func matchRules(state match.State) (rules.Rules, error) {
	name := state.Format
	if name == "" {
		name = "T20"
	}
	f, err := rules.Lookup(name)
	if err != nil {
		return rules.Rules{}, WrapExitError(ExitCommandError, "unknown match format", err)
	}
	return rules.Rules{Format: f}, nil
}

// scoreLine renders the familiar "123/4 (15.3)" progression line.
func scoreLine(state match.State) string {
	return fmt.Sprintf("%d/%d (%s)", state.Score, state.Wickets, state.OversString())
}

// resume builds an engine over a loaded snapshot so new events continue
// the persisted seq range.
func resume(state match.State) *engine.Engine {
	return engine.New(state)
}
