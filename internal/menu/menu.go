// Package menu implements the interactive presentation layer as a finite
// state machine: the state is the currently shown menu, user input selects
// the transition. All application state flows through the Session value;
// there are no package-level globals.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"budgetbook/internal/auth"
	"budgetbook/internal/ledgererr"
	"budgetbook/internal/logging"
	"budgetbook/internal/models"
	"budgetbook/internal/notifications"
	"budgetbook/internal/store"

	"github.com/shopspring/decimal"
)

// State identifies the menu currently shown.
type State int

const (
	StateAuthorization State = iota
	StateMain
	StateOperations
	StateCategories
	StateBudgeting
	StateAnalytics
	StateSnapshots
	StateExit
)

// General commands honored at every prompt.
const (
	commandCancel = "--cancel"
	commandLogout = "--logout"
	commandExit   = "--exit"
)

var (
	errLogout = errors.New("logout requested")
	errExit   = errors.New("exit requested")
)

// Session carries the logged-in user and the per-session settings. The
// notifications toggle deliberately resets on every program run.
type Session struct {
	User              *models.User
	ShowNotifications bool
}

// Menu drives the interactive loop.
type Menu struct {
	state   State
	session *Session
	auth    *auth.Authenticator
	store   *store.Store
	in      *bufio.Scanner
	out     io.Writer
	log     logging.Logger

	thresholds           notifications.Thresholds
	notificationsDefault bool
}

// New builds a menu starting at the authorization state. Notification
// thresholds come from the optional override file in the data directory;
// a broken override file falls back to the defaults with a warning.
func New(a *auth.Authenticator, s *store.Store, notificationsEnabled bool, in io.Reader, out io.Writer, log logging.Logger) *Menu {
	thresholds, err := notifications.LoadThresholds(s.ThresholdsFile())
	if err != nil {
		log.WithError(err).Warn("ignoring notification thresholds override",
			logging.Field{Key: logging.FieldFile, Value: s.ThresholdsFile()})
	}
	return &Menu{
		state:                StateAuthorization,
		session:              &Session{ShowNotifications: notificationsEnabled},
		auth:                 a,
		store:                s,
		in:                   bufio.NewScanner(in),
		out:                  out,
		log:                  log,
		thresholds:           thresholds,
		notificationsDefault: notificationsEnabled,
	}
}

// Run executes the state machine until the user exits or input ends.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "Welcome to budgetbook, your personal budgeting assistant.")
	fmt.Fprintf(m.out, "At any prompt: %s aborts the current action, %s returns to authorization, %s quits.\n",
		commandCancel, commandLogout, commandExit)

	for m.state != StateExit {
		var next State
		var err error
		switch m.state {
		case StateAuthorization:
			next, err = m.handleAuthorization()
		case StateMain:
			next, err = m.handleMain()
		case StateOperations:
			next, err = m.handleOperations()
		case StateCategories:
			next, err = m.handleCategories()
		case StateBudgeting:
			next, err = m.handleBudgeting()
		case StateAnalytics:
			next, err = m.handleAnalytics()
		case StateSnapshots:
			next, err = m.handleSnapshots()
		default:
			return fmt.Errorf("unknown menu state %d", m.state)
		}

		switch {
		case err == nil:
			m.state = next
		case errors.Is(err, ledgererr.ErrCancelled):
			fmt.Fprintln(m.out, ledgererr.ErrCancelled.Error())
		case errors.Is(err, errLogout):
			m.logout()
		case errors.Is(err, errExit):
			m.state = StateExit
		case errors.Is(err, io.EOF):
			m.state = StateExit
		default:
			fmt.Fprintln(m.out, "Error:", err)
		}
	}
	fmt.Fprintln(m.out, "Goodbye!")
	return nil
}

func (m *Menu) logout() {
	if m.session.User != nil {
		if err := m.store.SaveUser(m.session.User); err != nil {
			fmt.Fprintln(m.out, "Error saving your data on logout:", err)
		}
	}
	m.session = &Session{ShowNotifications: m.notificationsDefault}
	m.state = StateAuthorization
}

// readInput prints the prompt, reads one trimmed line and intercepts the
// general commands.
func (m *Menu) readInput(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(m.in.Text())
	switch line {
	case commandCancel:
		return "", ledgererr.ErrCancelled
	case commandLogout:
		return "", errLogout
	case commandExit:
		return "", errExit
	}
	return line, nil
}

// readCategory reads a category name and lowercases it; the services expect
// normalized category labels.
func (m *Menu) readCategory(prompt string) (string, error) {
	category, err := m.readInput(prompt)
	if err != nil {
		return "", err
	}
	if category == "" {
		return "", fmt.Errorf("category name must not be empty")
	}
	return strings.ToLower(category), nil
}

// readCategories reads a comma-separated list of category names.
func (m *Menu) readCategories(prompt string) ([]string, error) {
	line, err := m.readInput(prompt)
	if err != nil {
		return nil, err
	}
	var categories []string
	for _, part := range strings.Split(line, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			categories = append(categories, part)
		}
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one category name is required")
	}
	return categories, nil
}

func (m *Menu) readAmount(prompt string) (decimal.Decimal, error) {
	line, err := m.readInput(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, fmt.Errorf("'%s' is not a valid amount", line)
	}
	return amount, nil
}

// saveAndNotify persists the current user after a mutation and prints the
// notification block when the session has notifications enabled.
func (m *Menu) saveAndNotify() error {
	if err := m.store.SaveUser(m.session.User); err != nil {
		return err
	}
	if m.session.ShowNotifications {
		if text := m.thresholds.Build(m.session.User.Ledger); text != "" {
			fmt.Fprint(m.out, "\n"+text)
		}
	}
	return nil
}

func (m *Menu) handleAuthorization() (State, error) {
	fmt.Fprint(m.out, "\n--- Authorization ---\n"+
		"1. Log in\n"+
		"2. Register\n"+
		"3. Exit\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateAuthorization, err
	}

	switch choice {
	case "1":
		username, err := m.readInput("Username: ")
		if err != nil {
			return StateAuthorization, err
		}
		password, err := m.readInput("Password: ")
		if err != nil {
			return StateAuthorization, err
		}
		user, err := m.auth.Login(username, password)
		if err != nil {
			return StateAuthorization, err
		}
		m.session.User = user
		fmt.Fprintf(m.out, "Welcome back, %s!\n", user.Username)
		return StateMain, nil
	case "2":
		username, err := m.readInput("New username (latin letters and digits): ")
		if err != nil {
			return StateAuthorization, err
		}
		password, err := m.readInput("Password: ")
		if err != nil {
			return StateAuthorization, err
		}
		user, err := m.auth.Register(username, password)
		if err != nil {
			return StateAuthorization, err
		}
		m.session.User = user
		fmt.Fprintf(m.out, "Registered user %s successfully!\n", user.Username)
		return StateMain, nil
	case "3":
		return StateExit, nil
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateAuthorization, nil
	}
}

func (m *Menu) handleMain() (State, error) {
	fmt.Fprint(m.out, "\n--- Main menu ---\n"+
		"1. Income and expenses\n"+
		"2. Categories\n"+
		"3. Budgeting\n"+
		"4. Analytics\n"+
		"5. Snapshots\n"+
		"6. Transfer money to another user\n"+
		"7. Toggle notifications\n"+
		"8. Log out\n"+
		"9. Exit\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateMain, err
	}

	switch choice {
	case "1":
		return StateOperations, nil
	case "2":
		return StateCategories, nil
	case "3":
		return StateBudgeting, nil
	case "4":
		return StateAnalytics, nil
	case "5":
		return StateSnapshots, nil
	case "6":
		return StateMain, m.actionTransfer()
	case "7":
		m.session.ShowNotifications = !m.session.ShowNotifications
		fmt.Fprintf(m.out, "Notifications enabled: %t\n", m.session.ShowNotifications)
		return StateMain, nil
	case "8":
		return StateMain, errLogout
	case "9":
		return StateMain, errExit
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateMain, nil
	}
}
