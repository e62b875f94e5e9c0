package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rag-intent-chat/internal/app"
	"rag-intent-chat/internal/chat"
)

type askResult struct {
	Label         string     `json:"label"`
	WantsArtifact bool       `json:"wantsArtifact"`
	AnswerText    string     `json:"answerText"`
	ArtifactURI   string     `json:"artifactUri,omitempty"`
	Usage         chat.Usage `json:"usage"`
}

func newAskCmd() *cobra.Command {
	var in chat.HandleInput

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Run one prompt through the full pipeline and print the answer as JSON",
		Example: `  chatctl ask --tenant 00001 --user stevesmith@contoso.com --session 12345678 \
    --prompt "How do I change the cabin air filter?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := app.Build(ctx, cfg, l)
			if err != nil {
				return err
			}
			defer a.Close()
			defer func() {
				sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
				defer cancel()
				if err := a.Shutdown(sctx); err != nil {
					l.Warnf(sctx, "chatctl.ask: %v", err)
				}
			}()

			out, err := a.Chat.Handle(ctx, in)
			if err != nil {
				return fmt.Errorf("ask: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(askResult{
				Label:         out.Label,
				WantsArtifact: out.WantsArtifact,
				AnswerText:    out.AnswerText,
				ArtifactURI:   out.ArtifactURI,
				Usage:         out.Usage,
			})
		},
	}

	cmd.Flags().StringVar(&in.TenantID, "tenant", "", "tenant id")
	cmd.Flags().StringVar(&in.UserID, "user", "", "user id")
	cmd.Flags().StringVar(&in.SessionID, "session", "", "session id")
	cmd.Flags().StringVar(&in.Prompt, "prompt", "", "the question to ask")
	return cmd
}
