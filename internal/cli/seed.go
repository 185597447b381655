package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo authors and posts",
	Long:  "Insert a small demo dataset for local development. Does nothing when authors already exist.",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		ctx := cmd.Context()

		existing, err := services.AuthorService.ListAuthors(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing authors: %w", err)
		}
		if len(existing) > 0 {
			fmt.Println("Authors already exist, nothing to seed")
			return nil
		}

		authors := []struct {
			username, email, password string
		}{
			{"alice", "alice@example.com", "secret1"},
			{"bob", "bob@example.com", "secret2"},
			{"charlie", "charlie@example.com", "secret3"},
		}

		ids := make(map[string]int64, len(authors))
		for _, a := range authors {
			author, err := services.AuthorService.CreateAuthor(ctx, a.username, a.email, a.password)
			if err != nil {
				return fmt.Errorf("failed to seed author %s: %w", a.username, err)
			}
			ids[a.username] = author.ID
		}

		posts := []struct {
			title, content, owner string
		}{
			{"First Post", "Hello World!", "alice"},
			{"Alice's second post", "Some content here.", "alice"},
			{"Bob's first post", "Post by Bob.", "bob"},
		}

		for _, p := range posts {
			if _, err := services.PostService.CreatePost(ctx, p.title, p.content, ids[p.owner]); err != nil {
				return fmt.Errorf("failed to seed post %q: %w", p.title, err)
			}
		}

		fmt.Printf("Seeded %d authors and %d posts\n", len(authors), len(posts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
