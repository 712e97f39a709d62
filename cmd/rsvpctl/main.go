package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"weddingrsvp/internal/config"
	"weddingrsvp/internal/database"
	"weddingrsvp/internal/logger"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/security"
	"weddingrsvp/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	grantCmd := flag.NewFlagSet("grant-admin", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: rsvp_backup_YYYYMMDD_HHMMSS.json)")

	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	grantUser := grantCmd.String("user", "", "User ID (JWT subject) to grant the admin role (required)")

	tokenUser := tokenCmd.String("user", "", "User ID (JWT subject) to issue a token for (required)")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "Token lifetime")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, true)

	// Tokens need no database
	if os.Args[1] == "token" {
		tokenCmd.Parse(os.Args[2:])
		requireFlag(tokenCmd, "user", *tokenUser)
		handleToken(log, cfg.AdminJWTSecret, *tokenUser, *tokenTTL)
		return
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if _, err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	backupService := service.NewBackupService(db, service.WithLogger(log))

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(log, backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		requireFlag(importCmd, "input", *importInput)
		handleImport(log, backupService, db, *importInput, *importClear)

	case "grant-admin":
		grantCmd.Parse(os.Args[2:])
		requireFlag(grantCmd, "user", *grantUser)
		if err := repository.NewRoleRepository(db).Grant(*grantUser, models.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("Failed to grant admin role")
		}
		log.Info().Str("user_id", *grantUser).Msg("Admin role granted")

	default:
		printUsage()
		os.Exit(1)
	}
}

func requireFlag(fs *flag.FlagSet, name, value string) {
	if value == "" {
		fmt.Printf("Error: -%s flag is required\n", name)
		fs.PrintDefaults()
		os.Exit(1)
	}
}

func handleExport(log zerolog.Logger, backupService *service.BackupService, outputPath string) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("rsvp_backup_%s.json", timestamp)
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create output directory")
		}
	}

	log.Info().Str("path", outputPath).Msg("Exporting database")
	if err := backupService.Export(outputPath); err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}

	if fileInfo, err := os.Stat(outputPath); err == nil {
		log.Info().Int64("bytes", fileInfo.Size()).Msg("Export complete")
	}
}

func handleImport(log zerolog.Logger, backupService *service.BackupService, db *database.DB, inputPath string, clearData bool) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatal().Str("path", inputPath).Msg("Input file does not exist")
	}

	if clearData {
		fmt.Print("WARNING: This will delete all guests, RSVPs and admin roles. Type 'yes' to confirm: ")
		confirmation, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(confirmation) != "yes" {
			log.Info().Msg("Import cancelled")
			return
		}

		log.Info().Msg("Clearing existing data")
		if err := clearDatabase(log, db); err != nil {
			log.Fatal().Err(err).Msg("Failed to clear database")
		}
	}

	log.Info().Str("path", inputPath).Msg("Importing database")
	if err := backupService.Import(inputPath); err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}
	log.Info().Msg("Import complete")
}

func clearDatabase(log zerolog.Logger, db *database.DB) error {
	tables := []string{"rsvps", "guests", "user_roles"}

	return db.WithTx(func(tx *database.Tx) error {
		for _, table := range tables {
			if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
			log.Info().Str("table", table).Msg("Cleared table")
		}
		return nil
	})
}

func handleToken(log zerolog.Logger, secret, userID string, ttl time.Duration) {
	if secret == "" {
		log.Fatal().Msg("ADMIN_JWT_SECRET must be set to issue tokens")
	}
	token, err := security.IssueToken(secret, userID, ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}
	fmt.Println(token)
}

func printUsage() {
	fmt.Println("Wedding RSVP operator tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rsvpctl export [options]         Export guests, RSVPs and admins to JSON")
	fmt.Println("  rsvpctl import [options]         Import a JSON backup")
	fmt.Println("  rsvpctl grant-admin -user <id>   Grant the admin role to a user")
	fmt.Println("  rsvpctl token -user <id>         Sign an admin API token (needs ADMIN_JWT_SECRET)")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: rsvp_backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Clear existing data before import (WARNING: destructive)")
	fmt.Println()
	fmt.Println("Token Options:")
	fmt.Println("  -ttl <duration>   Token lifetime (default: 24h)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE           Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH           SQLite database path (default: ./wedding.db)")
	fmt.Println("  DATABASE_URL      PostgreSQL or MySQL connection URL")
	fmt.Println("  ADMIN_JWT_SECRET  HS256 secret shared with the identity provider")
}
