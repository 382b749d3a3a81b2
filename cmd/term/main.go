// term is the terminal front end for the portfolio API. Run without
// arguments for the visitor terminal; run "term admin" for the management
// console.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termfolio/cmd/term/admin"
	"termfolio/cmd/term/tui"
	"termfolio/internal/client"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "term",
	Short: "Interactive terminal portfolio",
	Long: `term renders the portfolio as an interactive terminal.

Type 'help' inside the terminal to see the available commands
(projects, education, techstack, experience, resume).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(apiURL)
		p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage portfolio content",
	Long: `admin opens the password-gated management console: one tab per
content kind with create, edit and delete. A successful login is
remembered until the server rejects the stored token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(apiURL)
		p := tea.NewProgram(admin.New(c), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset server content to the demo fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(apiURL)
		if err := c.Seed(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("seeded")
		return nil
	},
}

func defaultAPIURL() string {
	if v := os.Getenv("TERMFOLIO_API_URL"); v != "" {
		return v
	}
	return "http://localhost:5000"
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "portfolio API base URL")
	rootCmd.AddCommand(adminCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
