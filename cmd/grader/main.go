package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SAP-F-2025/homework-grader/internal/config"
	"github.com/SAP-F-2025/homework-grader/internal/models"
	"github.com/SAP-F-2025/homework-grader/internal/services"
	"github.com/SAP-F-2025/homework-grader/internal/utils"
	"github.com/SAP-F-2025/homework-grader/internal/validator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg       *config.Config
	logger    utils.Logger
	validator *validator.Validator
}

func loadApp(envFile string) (*app, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.LoadConfig(files...)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:       cfg,
		logger:    utils.NewLogger(cfg.IsDevelopment(), cfg.LogLevel),
		validator: validator.New(),
	}, nil
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "grader",
		Short:         "Check homework answers and generate the submission file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env if present)")

	root.AddCommand(newKeyCmd())
	root.AddCommand(newCompileCmd(&envFile))
	root.AddCommand(newCheckCmd(&envFile))
	root.AddCommand(newVerifyCmd())
	return root
}

func newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Print the reference answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i, value := range models.DefaultAnswerKey() {
				fmt.Fprintf(cmd.OutOrStdout(), "[ %d ] %s\n", i+1, strconv.FormatFloat(value, 'f', -1, 64))
			}
			return nil
		},
	}
}

func newCompileCmd(envFile *string) *cobra.Command {
	var sheetPath, outPath string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Submit every answer of a sheet and write the answers file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*envFile)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = a.cfg.OutputPath
			}

			sheet, err := services.LoadAnswerSheet(sheetPath, a.validator)
			if err != nil {
				return err
			}

			tracker, err := services.NewTracker(sheet.Name,
				services.WithOutputPath(outPath),
				services.WithConsole(cmd.OutOrStdout()),
				services.WithLogger(a.logger),
				services.WithValidator(a.validator),
			)
			if err != nil {
				return err
			}

			if err := services.ApplySheet(cmd.Context(), tracker, sheet); err != nil {
				return err
			}
			_, err = tracker.Finalize(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVar(&sheetPath, "sheet", "", "answer sheet (YAML or JSON)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file, extension picks the format (default GRADER_OUTPUT_PATH or answers.txt)")
	_ = cmd.MarkFlagRequired("sheet")
	return cmd
}

func newCheckCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <exercise> <value...>",
		Short: "Check a single answer without writing a file",
		Long: "Check a single answer. Exercises 1 and 2 take the value your function returned, " +
			"exercise 3 takes the whole sequence, exercises 4 to 6 take one number.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*envFile)
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid exercise %q: %w", args[0], err)
			}

			values := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				values = append(values, value)
			}

			var input any = values
			if index != 3 {
				if len(values) != 1 {
					return fmt.Errorf("exercise %d takes exactly one value, got %d", index, len(values))
				}
				input = values[0]
			}

			tracker, err := services.NewTracker("check",
				services.WithConsole(cmd.OutOrStdout()),
				services.WithLogger(a.logger),
				services.WithValidator(a.validator),
			)
			if err != nil {
				return err
			}

			return services.ApplySheet(cmd.Context(), tracker, &models.AnswerSheet{
				Name:    "check",
				Answers: map[int]any{index: input},
			})
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <answers-file>",
		Short: "Recompute the checksum of a generated answers file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.ReadReport(args[0])
			if err != nil {
				return err
			}

			crc, ok := services.VerifyReport(report)
			if !ok {
				return fmt.Errorf("checksum mismatch for %s: file has %v, answers give %v", report.Nm, report.Crc, crc)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: checksum %v OK\n", report.Nm, crc)
			return nil
		},
	}
}
