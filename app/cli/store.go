// Package cli implements the maintenance subcommands that operate on the
// on-disk store while the server is stopped.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bloghub/app/repositories"

	"github.com/dgraph-io/badger/v4"
)

// restoreBatch bounds the pending writes while a backup is loaded.
const restoreBatch = 256

// ErrNoStorePath is returned when the configured store keeps data in memory.
var ErrNoStorePath = errors.New("store.path is not set; the store is in memory")

// StoreCommands runs the store subcommands against Path.
type StoreCommands struct {
	Path      string
	BackupDir string
	Logger    badger.Logger
	In        io.Reader
	Out       io.Writer
	Now       func() time.Time
}

// Handle dispatches args and returns an exit code.
func (c *StoreCommands) Handle(args []string) int {
	if len(args) < 1 {
		c.printHelp()
		return 1
	}

	if c.Path == "" && args[0] != "help" {
		fmt.Fprintf(c.Out, "Error: %v\n", ErrNoStorePath)
		return 1
	}

	rest, yes := splitYes(args[1:])
	switch args[0] {
	case "init":
		return c.init()
	case "clean":
		return c.clean(yes)
	case "backup":
		file := ""
		if len(rest) > 0 {
			file = rest[0]
		}
		return c.backup(file)
	case "restore":
		if len(rest) < 1 {
			fmt.Fprintln(c.Out, "Error: backup file path required for restore")
			return 1
		}
		return c.restore(rest[0], yes)
	case "stats":
		return c.stats()
	case "help":
		c.printHelp()
		return 0
	default:
		fmt.Fprintf(c.Out, "Unknown store command: %s\n\n", args[0])
		c.printHelp()
		return 1
	}
}

func (c *StoreCommands) printHelp() {
	fmt.Fprintln(c.Out, `Usage: bloghub store <command> [options]

Commands:
  init                     Create an empty database at store.path
  clean [--yes]            Remove the database
  backup [file]            Write a full backup (default: <backup dir>/backup_<unix>.db)
  restore <file> [--yes]   Replace the database with a backup
  stats                    Print the number of stored blogs, posts and videos
  help                     Display this help message`)
}

// splitYes removes the confirmation flags from args.
func splitYes(args []string) ([]string, bool) {
	var rest []string
	yes := false
	for _, arg := range args {
		switch arg {
		case "-y", "--yes":
			yes = true
		default:
			rest = append(rest, arg)
		}
	}
	return rest, yes
}

func (c *StoreCommands) confirm(question string) bool {
	fmt.Fprintf(c.Out, "%s [y/N] ", question)
	if c.In == nil {
		return false
	}
	scanner := bufio.NewScanner(c.In)
	if !scanner.Scan() {
		return false
	}
	answer := strings.TrimSpace(scanner.Text())
	return answer == "y" || answer == "Y"
}

func (c *StoreCommands) exists() bool {
	_, err := os.Stat(c.Path)
	return err == nil
}

func (c *StoreCommands) open() (*repositories.Store, error) {
	return repositories.NewStore(c.Path, c.Logger)
}

func (c *StoreCommands) init() int {
	if c.exists() {
		fmt.Fprintln(c.Out, "Database already exists. Use 'clean' first if you want to reinitialize.")
		return 1
	}

	if err := os.MkdirAll(c.Path, 0o755); err != nil {
		fmt.Fprintf(c.Out, "Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := c.open()
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()

	fmt.Fprintln(c.Out, "Database initialized successfully")
	return 0
}

func (c *StoreCommands) clean(yes bool) int {
	if !c.exists() {
		fmt.Fprintln(c.Out, "Database is already clean (does not exist)")
		return 0
	}

	if !yes && !c.confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(c.Out, "Operation cancelled")
		return 1
	}

	if err := os.RemoveAll(c.Path); err != nil {
		fmt.Fprintf(c.Out, "Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Fprintln(c.Out, "Database cleaned successfully")
	return 0
}

func (c *StoreCommands) backup(file string) int {
	if !c.exists() {
		fmt.Fprintln(c.Out, "No database exists to backup")
		return 1
	}

	if file == "" {
		dir := c.BackupDir
		if dir == "" {
			dir = filepath.Join(filepath.Dir(c.Path), "backups")
		}
		now := time.Now
		if c.Now != nil {
			now = c.Now
		}
		file = filepath.Join(dir, fmt.Sprintf("backup_%d.db", now().Unix()))
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		fmt.Fprintf(c.Out, "Failed to create backup directory: %v\n", err)
		return 1
	}

	store, err := c.open()
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	f, err := os.Create(file)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := store.DB().Backup(f, 0); err != nil {
		fmt.Fprintf(c.Out, "Failed to backup database: %v\n", err)
		return 1
	}

	fmt.Fprintf(c.Out, "Database backed up successfully to %s\n", file)
	return 0
}

func (c *StoreCommands) restore(file string, yes bool) int {
	fi, err := os.Stat(file)
	if err != nil {
		fmt.Fprintf(c.Out, "Backup file does not exist: %s\n", file)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Fprintf(c.Out, "Backup file is empty: %s\n", file)
		return 1
	}

	if c.exists() {
		if !yes && !c.confirm("Existing database found. Do you want to replace it?") {
			fmt.Fprintln(c.Out, "Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(c.Path); err != nil {
			fmt.Fprintf(c.Out, "Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	if err := os.MkdirAll(c.Path, 0o755); err != nil {
		fmt.Fprintf(c.Out, "Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := c.open()
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := load(store.DB(), f); err != nil {
		fmt.Fprintf(c.Out, "Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Fprintln(c.Out, "Database restored successfully")
	return 0
}

// load turns a panic inside badger's loader into an error; a truncated backup
// can trigger one.
func load(db *badger.DB, r io.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	return db.Load(r, restoreBatch)
}

func (c *StoreCommands) stats() int {
	if !c.exists() {
		fmt.Fprintln(c.Out, "No database exists")
		return 1
	}

	store, err := c.open()
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	ctx := context.Background()
	blogs, err := store.Blogs().List(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to read blogs: %v\n", err)
		return 1
	}
	posts, err := store.Posts().List(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to read posts: %v\n", err)
		return 1
	}
	videos, err := store.Videos().List(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to read videos: %v\n", err)
		return 1
	}

	fmt.Fprintf(c.Out, "blogs:  %d\nposts:  %d\nvideos: %d\n", len(blogs), len(posts), len(videos))
	return 0
}
