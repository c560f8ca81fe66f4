package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (*services.AuthService, *services.MockAccountStore, *services.MockTransactionWriter, *services.MockJWTGenerator) {
	ctrl := gomock.NewController(t)
	tm := services.NewMockTxManager(ctrl)
	tm.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	accounts := services.NewMockAccountStore(ctrl)
	ledger := services.NewMockTransactionWriter(ctrl)
	jwt := services.NewMockJWTGenerator(ctrl)
	return services.NewAuthService(tm, accounts, ledger, jwt), accounts, ledger, jwt
}

func TestAuthService_Register(t *testing.T) {
	t.Run("agent gets api key and welcome bonus", func(t *testing.T) {
		svc, accounts, ledger, jwt := newAuth(t)

		var created *models.AccountDB
		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.AccountDB) error {
				created = a
				return nil
			})
		ledger.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *models.TransactionDB) error {
				assert.Equal(t, models.TxDeposit, tx.Type)
				assert.Equal(t, models.TxCompleted, tx.Status)
				assert.Equal(t, services.WelcomeBonus, tx.Amount)
				assert.Equal(t, "Welcome Bonus", tx.Description)
				assert.Equal(t, created.ID, tx.ToAccountID.UUID)
				return nil
			})
		jwt.EXPECT().Generate(gomock.Any(), gomock.Any(), "AGENT").Return("token123", nil)

		session, err := svc.Register(context.Background(), services.RegisterInput{Name: "trading-bot", Role: models.RoleAgent})
		require.NoError(t, err)

		assert.Equal(t, "token123", session.Token)
		assert.Regexp(t, `^ocm_[0-9a-z]{32}$`, session.APIKey)
		assert.Equal(t, services.WelcomeBonus, session.Account.Balance)
		assert.Nil(t, session.Account.PasswordHash)
	})

	t.Run("human password is hashed", func(t *testing.T) {
		svc, accounts, ledger, jwt := newAuth(t)

		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		jwt.EXPECT().Generate(gomock.Any(), gomock.Any(), "HUMAN").Return("t", nil)

		session, err := svc.Register(context.Background(), services.RegisterInput{Name: "alice", Role: models.RoleHuman, Password: "password1"})
		require.NoError(t, err)
		require.NotNil(t, session.Account.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*session.Account.PasswordHash), []byte("password1")))
		assert.Empty(t, session.APIKey)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, accounts, _, _ := newAuth(t)

		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.ErrAlreadyExists)

		_, err := svc.Register(context.Background(), services.RegisterInput{Name: "alice", Role: models.RoleAgent})
		assert.ErrorIs(t, err, services.ErrNameTaken)
	})

	tests := []struct {
		name    string
		in      services.RegisterInput
		wantErr error
	}{
		{"name too short", services.RegisterInput{Name: "ab", Role: models.RoleAgent}, services.ErrInvalidName},
		{"name with markup", services.RegisterInput{Name: "<script>", Role: models.RoleAgent}, services.ErrInvalidName},
		{"admin role", services.RegisterInput{Name: "root", Role: models.RoleAdmin}, services.ErrInvalidRole},
		{"human without password", services.RegisterInput{Name: "alice", Role: models.RoleHuman}, services.ErrPasswordRequired},
		{"short password", services.RegisterInput{Name: "bot1", Role: models.RoleAgent, Password: "short"}, services.ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newAuth(t)

			_, err := svc.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret-password"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hash := string(hashed)
	apiKey := "ocm_abcdefghijklmnopqrstuvwxyz012345"
	userID := uuid.New()

	tests := []struct {
		name      string
		account   *models.AccountDB
		readerErr error
		password  string
		apiKey    string
		jwtErr    error
		wantErr   error
	}{
		{
			name:     "password login",
			account:  &models.AccountDB{ID: userID, Name: "alice", Role: models.RoleHuman, PasswordHash: &hash},
			password: password,
		},
		{
			name:    "api key login",
			account: &models.AccountDB{ID: userID, Name: "bot", Role: models.RoleAgent, APIKey: &apiKey},
			apiKey:  apiKey,
		},
		{
			name:     "wrong password",
			account:  &models.AccountDB{ID: userID, Name: "alice", Role: models.RoleHuman, PasswordHash: &hash},
			password: "wrong-password",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:    "wrong api key",
			account: &models.AccountDB{ID: userID, Name: "bot", Role: models.RoleAgent, APIKey: &apiKey},
			apiKey:  "ocm_nope",
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:    "api key ignored when password is set",
			account: &models.AccountDB{ID: userID, Name: "bot", Role: models.RoleAgent, APIKey: &apiKey, PasswordHash: &hash},
			apiKey:  apiKey,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:    "unknown account",
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "JWT generation error",
			account:  &models.AccountDB{ID: userID, Name: "alice", Role: models.RoleHuman, PasswordHash: &hash},
			password: password,
			jwtErr:   errors.New("jwt error"),
			wantErr:  errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accounts, _, jwt := newAuth(t)

			accounts.EXPECT().GetByName(gomock.Any(), "someone").Return(tt.account, tt.readerErr)
			if tt.account != nil && (tt.wantErr == nil || tt.jwtErr != nil) {
				jwt.EXPECT().Generate(gomock.Any(), userID, string(tt.account.Role)).Return("token123", tt.jwtErr)
			}

			session, err := svc.Login(context.Background(), "someone", tt.password, tt.apiKey)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token123", session.Token)
			}
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, accounts, _, _ := newAuth(t)
	id := uuid.New()

	accounts.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	_, err := svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
