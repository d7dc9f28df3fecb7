package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"juscash/verifier/pkg/config"
	"juscash/verifier/pkg/policy"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the active policy document",
	Long: `Print the policy document the server would evaluate against, exactly
as it is rendered into the reasoning-service prompt. Useful for reviewing
a custom policy file before deploying it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		doc := policy.Default()
		if cfg.Policy.File != "" {
			doc, err = policy.Load(cfg.Policy.File)
			if err != nil {
				return fmt.Errorf("failed to load policy file: %w", err)
			}
		}

		fmt.Println(doc.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
}
