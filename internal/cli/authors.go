package cli

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Manage authors",
	Long:  "Manage author records from the terminal",
}

var authorsAddCmd = &cobra.Command{
	Use:   "add <username> <email>",
	Short: "Add a new author",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, email := args[0], args[1]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		if len(password) == 0 {
			return fmt.Errorf("password must not be empty")
		}

		author, err := services.AuthorService.CreateAuthor(cmd.Context(), username, email, string(password))
		if err != nil {
			return fmt.Errorf("failed to create author: %w", err)
		}

		fmt.Printf("Author '%s' created with id %d\n", author.Username, author.ID)
		return nil
	},
}

var authorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an author and all its posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid author id: %s", args[0])
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		fmt.Printf("Are you sure you want to delete author %d and all its posts? (yes/no): ", id)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Cancelled")
			return nil
		}

		if err := services.AuthorService.DeleteAuthor(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}

		fmt.Printf("Author %d deleted\n", id)
		return nil
	},
}

var authorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all authors",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		authors, err := services.AuthorService.ListAuthors(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list authors: %w", err)
		}

		if len(authors) == 0 {
			fmt.Println("No authors found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tCREATED AT")
		for _, author := range authors {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				author.ID,
				author.Username,
				author.Email,
				author.CreatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(authorsCmd)
	authorsCmd.AddCommand(authorsAddCmd)
	authorsCmd.AddCommand(authorsDeleteCmd)
	authorsCmd.AddCommand(authorsListCmd)
}
