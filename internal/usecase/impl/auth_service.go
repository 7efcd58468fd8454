package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/kimkuhyun/JH0103/internal/delivery/context"
	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/identity"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"
	"github.com/kimkuhyun/JH0103/internal/domain/service"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	oauthService service.OAuthService
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OAuthService service.OAuthService
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		oauthService: params.OAuthService,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginURL builds the provider consent page URL for the given state.
func (srv *authService) LoginURL(ctx context.Context, provider, state string) (string, error) {
	url, err := srv.oauthService.AuthCodeURL(provider, state)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Debug("Built OAuth login URL", slog.String("provider", provider))

	return url, nil
}

// HandleCallback completes the social login: code exchange, profile fetch,
// identity normalization, find-or-create of the local user, token issuance.
func (srv *authService) HandleCallback(ctx context.Context, input usecase.OAuthCallbackInput) (*usecase.LoginOutput, error) {
	profile, err := srv.oauthService.FetchProfile(ctx, input.Provider, input.Code)
	if err != nil {
		return nil, err
	}

	if !identity.Known(input.Provider) {
		// Unknown providers fall back to the default attribute mapping;
		// worth a trace when a new provider is being rolled out.
		srv.log(ctx).Warn("Unrecognized OAuth provider, using default attribute mapping",
			slog.String("provider", input.Provider),
		)
	}

	ident, err := identity.Normalize(profile.Provider, profile.PrimaryAttributeKey, profile.Attributes)
	if err != nil {
		srv.log(ctx).Error("Failed to normalize provider profile",
			slog.String("provider", input.Provider),
			slog.Any("error", err),
		)

		return nil, err
	}

	user, err := srv.findOrCreateUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("userID", user.ID),
		slog.String("provider", user.Provider),
	)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// CurrentUser loads the user for an authenticated request identity.
func (srv *authService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("request identity has no user")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// findOrCreateUser resolves the normalized identity to a local user row.
// The (provider, providerID) pair is the stable key; repeated logins update
// only the mutable display fields.
func (srv *authService) findOrCreateUser(ctx context.Context, ident *identity.ExternalIdentity) (*entity.User, error) {
	var resolved *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByProvider(ctx, ident.Provider, ident.ProviderID)
		if err == nil {
			existing.Name = ident.DisplayName
			existing.Picture = ident.AvatarURL
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to refresh user profile on login")
			}
			resolved = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user by provider identity")
		}

		newUser := &entity.User{
			Name:       ident.DisplayName,
			Email:      ident.Email,
			Picture:    ident.AvatarURL,
			Provider:   ident.Provider,
			ProviderID: ident.ProviderID,
			Role:       entity.RoleUser,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user on first login")
		}
		resolved = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve user for login",
			slog.String("provider", ident.Provider),
			slog.Any("error", err),
		)

		return nil, err
	}

	return resolved, nil
}
