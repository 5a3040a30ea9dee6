package manage

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskmanager/internal/core/domain"
)

var createUserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Register a user without going through the web form",
	Args:  cobra.NoArgs,
	RunE:  runCreateUser,
}

var (
	createUsername  string
	createPassword  string
	createFirstName string
	createLastName  string
)

func init() {
	rootCmd.AddCommand(createUserCmd)
	createUserCmd.Flags().StringVar(&createUsername, "username", "", "login name")
	createUserCmd.Flags().StringVar(&createPassword, "password", "", "plain text password, stored hashed")
	createUserCmd.Flags().StringVar(&createFirstName, "first-name", "", "first name")
	createUserCmd.Flags().StringVar(&createLastName, "last-name", "", "last name")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	user, err := newServices(db).users.RegisterUser(cmd.Context(), domain.RegisterUserInput{
		Username:  createUsername,
		FirstName: createFirstName,
		LastName:  createLastName,
		Password:  createPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create user %q: %w", createUsername, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Username, user.ID)
	return nil
}
