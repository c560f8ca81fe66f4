package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrNameTaken          = models.NewError(models.ErrValidation, "Name already taken")
	ErrInvalidName        = models.NewError(models.ErrValidation, "Name must be 3-50 characters of letters, digits, spaces, '_' or '-'")
	ErrInvalidRole        = models.NewError(models.ErrValidation, "Role must be AGENT or HUMAN")
	ErrPasswordRequired   = models.NewError(models.ErrValidation, "Password must be at least 8 characters")
	ErrInvalidCredentials = models.NewError(models.ErrUnauthorized, "Invalid credentials")
)

// WelcomeBonus is credited to every new account.
var WelcomeBonus = money.FromUnits(100)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]{3,50}$`)

// AccountStore reads and creates accounts.
type AccountStore interface {
	Create(ctx context.Context, account *models.AccountDB) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccountDB, error)
	GetByName(ctx context.Context, name string) (*models.AccountDB, error)
}

// TransactionWriter appends ledger rows.
type TransactionWriter interface {
	Create(ctx context.Context, t *models.TransactionDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// RegisterInput is a registration request.
type RegisterInput struct {
	Name     string
	Role     models.Role
	Password string
}

// Session is an authenticated account with its token. APIKey is only set once,
// right after an agent registers.
type Session struct {
	Account *models.AccountDB
	Token   string
	APIKey  string
}

// AuthService handles registration and login.
type AuthService struct {
	tm       TxManager
	accounts AccountStore
	ledger   TransactionWriter
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(tm TxManager, accounts AccountStore, ledger TransactionWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		tm:       tm,
		accounts: accounts,
		ledger:   ledger,
		jwt:      jwt,
	}
}

// Register creates an account funded with the welcome bonus and returns a session.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	name := strings.TrimSpace(in.Name)
	if !namePattern.MatchString(name) {
		return nil, ErrInvalidName
	}
	if in.Role == "" {
		in.Role = models.RoleAgent
	}
	if in.Role != models.RoleAgent && in.Role != models.RoleHuman {
		return nil, ErrInvalidRole
	}
	if in.Role == models.RoleHuman && len(in.Password) < 8 {
		return nil, ErrPasswordRequired
	}
	if in.Password != "" && len(in.Password) < 8 {
		return nil, ErrPasswordRequired
	}

	account := &models.AccountDB{
		ID:      uuid.New(),
		Name:    name,
		Role:    in.Role,
		Balance: WelcomeBonus,
	}

	if in.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		hash := string(hashedPassword)
		account.PasswordHash = &hash
	}

	var apiKey string
	if in.Role == models.RoleAgent {
		key, err := newAPIKey()
		if err != nil {
			logger.Log.Errorw("failed to generate api key", "err", err)
			return nil, err
		}
		apiKey = key
		account.APIKey = &apiKey
	}

	err := svc.tm.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.accounts.Create(ctx, account); err != nil {
			return err
		}
		return svc.ledger.Create(ctx, &models.TransactionDB{
			ID:          uuid.New(),
			Type:        models.TxDeposit,
			Amount:      WelcomeBonus,
			Description: "Welcome Bonus",
			Status:      models.TxCompleted,
			ToAccountID: nullID(account.ID),
			Metadata:    models.NewMetadata(models.InstantMetadata{Source: "welcome_bonus", Currency: "SHELL"}),
		})
	})
	if errors.Is(err, models.ErrAlreadyExists) {
		logger.Log.Errorw("account already exists", "name", name)
		return nil, ErrNameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to register account", "name", name, "err", err)
		return nil, err
	}

	token, err := svc.jwt.Generate(ctx, account.ID, string(account.Role))
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	logger.Log.Infow("account registered", "account_id", account.ID, "role", account.Role)
	return &Session{Account: account, Token: token, APIKey: apiKey}, nil
}

// Login authenticates by password, or by API key for agents registered without one.
func (svc *AuthService) Login(ctx context.Context, name, password, apiKey string) (*Session, error) {
	account, err := svc.accounts.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "name", name)
		return nil, ErrInvalidCredentials
	}

	switch {
	case account.PasswordHash != nil:
		if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(password)); err != nil {
			logger.Log.Errorw("invalid credentials", "name", name)
			return nil, ErrInvalidCredentials
		}
	case account.APIKey != nil && apiKey != "":
		if subtle.ConstantTimeCompare([]byte(*account.APIKey), []byte(apiKey)) != 1 {
			logger.Log.Errorw("invalid api key", "name", name)
			return nil, ErrInvalidCredentials
		}
	default:
		logger.Log.Errorw("no usable credentials", "name", name)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, account.ID, string(account.Role))
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &Session{Account: account, Token: token}, nil
}

// Me returns the account behind a session.
func (svc *AuthService) Me(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	account, err := svc.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "account_id", accountID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

const apiKeyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newAPIKey returns "ocm_" followed by 32 random base36 characters.
func newAPIKey() (string, error) {
	var sb strings.Builder
	sb.WriteString("ocm_")
	max := big.NewInt(int64(len(apiKeyAlphabet)))
	for i := 0; i < 32; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(apiKeyAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
