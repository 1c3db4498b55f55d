// Package shell runs the interactive menus on top of the account service.
package shell

import (
	"bufio"   // Line input
	"errors"  // Error inspection
	"fmt"     // Output formatting
	"io"      // Input and output streams
	"strconv" // Id parsing
	"strings" // Input trimming

	"github.com/shopspring/decimal" // Amount parsing
	"github.com/sirupsen/logrus"    // Structured logging

	"user_ledger/internal/domain" // Domain models
)

// Accounts is the slice of the account service the menus use
type Accounts interface {
	Create(name, email, password string) (*domain.User, error)
	ReadAll() []domain.User
	Get(id int) (*domain.User, error)
	Update(id int, upd domain.UserUpdate) (*domain.User, error)
	Delete(id int) (bool, error)
	Deposit(id int, amount decimal.Decimal) (*domain.User, error)
	Withdraw(id int, amount decimal.Decimal) (*domain.User, error)
	Transactions(id int) ([]domain.Transaction, error)
}

// Gate checks admin and user credentials
type Gate interface {
	AdminLogin(username, password string) bool
	UserLogin(email, password string) (*domain.User, error)
}

// PasswordReader reads a secret after printing prompt
type PasswordReader func(prompt string) (string, error)

// Shell drives the main, user and admin menus over line-oriented input
type Shell struct {
	in           *bufio.Scanner
	out          io.Writer
	accounts     Accounts
	gate         Gate
	readPassword PasswordReader
	log          logrus.FieldLogger
}

// errQuit signals that input ended
var errQuit = errors.New("input closed")

// New returns a shell reading from in and writing to out
func New(in io.Reader, out io.Writer, accounts Accounts, gate Gate, log logrus.FieldLogger) *Shell {
	s := &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		accounts: accounts,
		gate:     gate,
		log:      log,
	}
	s.readPassword = s.prompt // Echoing fallback
	return s
}

// SetPasswordReader replaces how secrets are read, e.g. with a no-echo terminal reader
func (s *Shell) SetPasswordReader(r PasswordReader) {
	s.readPassword = r
}

// Run loops over the main menu until the user exits or input ends
func (s *Shell) Run() error {
	s.println("Welcome to the User Management System!")
	for {
		s.println("\nOptions:")
		s.println("1. User Registration")
		s.println("2. User Login")
		s.println("3. Admin Login")
		s.println("4. Exit")
		choice, err := s.prompt("Enter your choice (1-4): ")
		if err != nil {
			return quitErr(err)
		}
		switch strings.TrimSpace(choice) {
		case "1":
			err = s.register()
		case "2":
			err = s.userLogin()
		case "3":
			err = s.adminLogin()
		case "4":
			s.println("Exiting program. Goodbye!")
			return nil
		default:
			s.println("Invalid choice. Please enter a number between 1 and 4.")
		}
		if err != nil {
			return quitErr(err)
		}
	}
}

func (s *Shell) register() error {
	name, err := s.prompt("Enter your full name: ")
	if err != nil {
		return err
	}
	email, err := s.prompt("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := s.readPassword("Enter your password: ")
	if err != nil {
		return err
	}
	user, err := s.accounts.Create(name, email, password)
	if err != nil {
		s.failed("register", err)
		return nil
	}
	s.printf("User registered successfully! Your user ID is %d.\n", user.ID)
	return nil
}

func (s *Shell) userLogin() error {
	email, err := s.prompt("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := s.readPassword("Enter your password: ")
	if err != nil {
		return err
	}
	user, err := s.gate.UserLogin(email, password)
	if err != nil {
		s.println("Login failed. Invalid email or password.")
		return nil
	}
	s.printf("Login successful. Welcome, %s!\n", user.Name)
	RenderUsers(s.out, []domain.User{*user}, UserColumns{Balance: true})
	return s.userMenu(user.ID)
}

func (s *Shell) userMenu(id int) error {
	for {
		s.println("\nUser Options:")
		s.println("1. View Your Details")
		s.println("2. Update Your Details")
		s.println("3. Deposit Money")
		s.println("4. Withdraw Money")
		s.println("5. Delete Your Account")
		s.println("6. Logout")
		s.println("7. View Transaction History")
		choice, err := s.prompt("Enter your choice (1-7): ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			user, err := s.accounts.Get(id)
			if err != nil {
				s.failed("view", err)
				continue
			}
			RenderUsers(s.out, []domain.User{*user}, UserColumns{Balance: true})
		case "2":
			upd, err := s.readUpdate()
			if err != nil {
				return err
			}
			user, err := s.accounts.Update(id, upd)
			if err != nil {
				s.println("Failed to update your details.")
				continue
			}
			s.println("Your details updated successfully!")
			RenderUsers(s.out, []domain.User{*user}, UserColumns{Balance: true})
		case "3":
			if err := s.moveMoney(id, domain.Deposit); err != nil {
				return err
			}
		case "4":
			if err := s.moveMoney(id, domain.Withdrawal); err != nil {
				return err
			}
		case "5":
			confirm, err := s.prompt("Are you sure you want to delete your account? (yes/no): ")
			if err != nil {
				return err
			}
			if strings.ToLower(strings.TrimSpace(confirm)) != "yes" {
				s.println("Account deletion canceled.")
				continue
			}
			deleted, err := s.accounts.Delete(id)
			if err != nil || !deleted {
				s.println("Failed to delete your account.")
				continue
			}
			s.println("Your account has been deleted. Goodbye!")
			return nil
		case "6":
			s.println("Logging out. Goodbye!")
			return nil
		case "7":
			txs, err := s.accounts.Transactions(id)
			if err != nil {
				s.failed("history", err)
				continue
			}
			if len(txs) == 0 {
				s.println("No transactions to display.")
				continue
			}
			RenderTransactions(s.out, txs)
		default:
			s.println("Invalid choice. Please enter a number between 1 and 7.")
		}
	}
}

// moveMoney reads an amount and posts a deposit or withdrawal for id
func (s *Shell) moveMoney(id int, typ domain.TransactionType) error {
	verb := "deposit"
	if typ == domain.Withdrawal {
		verb = "withdraw"
	}
	raw, err := s.prompt("Enter the amount to " + verb + ": ")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		s.println("Invalid input. Please enter a valid number.")
		return nil
	}
	var user *domain.User
	if typ == domain.Deposit {
		user, err = s.accounts.Deposit(id, amount)
	} else {
		user, err = s.accounts.Withdraw(id, amount)
	}
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		s.println("Invalid amount. Please enter a positive value.")
	case errors.Is(err, domain.ErrInsufficientFunds):
		s.println("Insufficient funds.")
	case err != nil:
		s.failed(verb, err)
	case typ == domain.Deposit:
		s.printf("Deposit of %s successful. New balance: %s\n", amount.String(), user.Balance.StringFixed(2))
	default:
		s.printf("Withdrawal of %s successful. New balance: %s\n", amount.String(), user.Balance.StringFixed(2))
	}
	return nil
}

func (s *Shell) adminLogin() error {
	username, err := s.prompt("Enter admin username: ")
	if err != nil {
		return err
	}
	password, err := s.readPassword("Enter admin password: ")
	if err != nil {
		return err
	}
	if !s.gate.AdminLogin(username, password) {
		s.println("Admin login failed. Access denied.")
		return nil
	}
	s.println("Admin login successful. Welcome, admin!")
	return s.adminMenu()
}

func (s *Shell) adminMenu() error {
	for {
		s.println("\nAdmin Options:")
		s.println("1. View Users")
		s.println("2. Update User")
		s.println("3. Delete User")
		s.println("4. Exit")
		choice, err := s.prompt("Enter your choice (1-4): ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			users := s.accounts.ReadAll()
			if len(users) == 0 {
				s.println("No users to display.")
				continue
			}
			s.println("\nUsers:")
			RenderUsers(s.out, users, UserColumns{Password: true, Balance: true})
		case "2":
			id, ok, err := s.readUserID("Enter the user ID to update: ")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			upd, err := s.readUpdate()
			if err != nil {
				return err
			}
			user, err := s.accounts.Update(id, upd)
			if errors.Is(err, domain.ErrNotFound) {
				s.println("User not found.")
				continue
			}
			if err != nil {
				s.failed("update", err)
				continue
			}
			s.println("User updated successfully!")
			RenderUsers(s.out, []domain.User{*user}, UserColumns{Password: true, Balance: true})
		case "3":
			id, ok, err := s.readUserID("Enter the user ID to delete: ")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			deleted, err := s.accounts.Delete(id)
			if err != nil {
				s.failed("delete", err)
				continue
			}
			if !deleted {
				s.println("User not found.")
				continue
			}
			s.println("User deleted successfully!")
		case "4":
			s.println("Exiting admin panel. Goodbye, admin!")
			return nil
		default:
			s.println("Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}

// readUpdate prompts for each identity field; blank input keeps the current value
func (s *Shell) readUpdate() (domain.UserUpdate, error) {
	var upd domain.UserUpdate
	name, err := s.prompt("Enter the updated name (press Enter to keep the existing name): ")
	if err != nil {
		return upd, err
	}
	email, err := s.prompt("Enter the updated email (press Enter to keep the existing email): ")
	if err != nil {
		return upd, err
	}
	password, err := s.readPassword("Enter the updated password (press Enter to keep the existing password): ")
	if err != nil {
		return upd, err
	}
	upd.Name = keepIfBlank(name)
	upd.Email = keepIfBlank(email)
	upd.Password = keepIfBlank(password)
	return upd, nil
}

func (s *Shell) readUserID(prompt string) (int, bool, error) {
	raw, err := s.prompt(prompt)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.println("Invalid input. Please enter a valid user ID.")
		return 0, false, nil
	}
	return id, true, nil
}

// prompt prints p and returns the next input line without its newline
func (s *Shell) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return s.in.Text(), nil
}

func (s *Shell) failed(op string, err error) {
	s.log.WithFields(logrus.Fields{
		"type":  op,          // Menu action
		"error": err.Error(), // Error message
	}).Error("Menu action failed")
	s.printf("Operation failed: %v\n", err)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func keepIfBlank(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

// quitErr maps end of input to a clean exit
func quitErr(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
