// seed loads catalog rows into MySQL. Books are not created through the
// API, so this is how a deployment gets its initial inventory.
//
//	seed --csv books.csv
//	seed --title "Dune" --author "Frank Herbert"
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"booklend/internal/adapter/repository/mysql"
	"booklend/internal/config"
	bookDomain "booklend/internal/domain/book"
	"booklend/internal/infrastructure/db"
)

func main() {
	var (
		csvPath string
		title   string
		author  string
		migrate bool
	)

	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed the book catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			gdb, err := db.OpenGorm(cfg.MySQLDSN())
			if err != nil {
				return err
			}
			if migrate {
				if err := gdb.AutoMigrate(&bookDomain.Book{}); err != nil {
					return fmt.Errorf("migrate books: %w", err)
				}
			}

			repo := mysql.NewBookRepository(gdb)
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			switch {
			case csvPath != "":
				n, err := seedFromCSV(ctx, repo, csvPath)
				if err != nil {
					return err
				}
				log.Printf("seeded %d books from %s", n, csvPath)
			case title != "" && author != "":
				b := &bookDomain.Book{Name: title, Author: author, Available: true}
				if err := repo.Create(ctx, b); err != nil {
					return err
				}
				log.Printf("seeded book %d: %s by %s", b.ID, b.Name, b.Author)
			default:
				return errors.New("provide --csv, or --title with --author")
			}
			return nil
		},
	}

	root.Flags().StringVar(&csvPath, "csv", "", "CSV file with name,author rows")
	root.Flags().StringVar(&title, "title", "", "single book title")
	root.Flags().StringVar(&author, "author", "", "single book author")
	root.Flags().BoolVar(&migrate, "migrate", false, "run AutoMigrate for the books table first")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// seedFromCSV reads name,author pairs; a header row named "name" is skipped.
func seedFromCSV(ctx context.Context, repo *mysql.BookRepository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	n := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
		if rec[0] == "name" {
			continue
		}
		b := &bookDomain.Book{Name: rec[0], Author: rec[1], Available: true}
		if err := repo.Create(ctx, b); err != nil {
			return n, fmt.Errorf("insert %q: %w", rec[0], err)
		}
		n++
	}
	return n, nil
}
