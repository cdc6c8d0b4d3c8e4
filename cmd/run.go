package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/app"
	"github.com/abhisek/mathdrop/internal/logger"
	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/screens/game"
	"github.com/abhisek/mathdrop/internal/session"
)

// runGame opens the store, builds dependencies, and launches the TUI.
// A grade of 0 uses the configured grade.
func runGame(cmd *cobra.Command, grade int, skipWelcome bool) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, dbPath, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(logPathFor(dbPath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log, err := logger.Setup(cfg.Log.Level, cfg.Log.Format, logFile)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	deviceID, err := st.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("load device id: %w", err)
	}

	if grade == 0 {
		grade = cfg.Game.Grade
	}
	rules := session.DefaultConfig()
	rules.Lives = cfg.Game.Lives

	log.Info("starting mathdrop", "version", buildVersion(), "db", dbPath, "grade", grade,
		"telemetry", cfg.Telemetry.Enabled)

	return app.Run(app.Options{
		Game: game.Deps{
			Grade:          mathgen.ClampGrade(grade),
			Rules:          rules,
			Events:         st.EventRepo(),
			Scores:         st.HighScoreRepo(),
			DeviceID:       deviceID,
			PlayerName:     cfg.Game.PlayerName,
			EventRetention: cfg.Database.EventRetention,
			Logger:         log,

			DisableTelemetry: !cfg.Telemetry.Enabled,
		},
		SkipWelcome: skipWelcome,
	})
}
