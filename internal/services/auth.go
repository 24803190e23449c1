package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "gorm.io/gorm"
  "golang.org/x/crypto/bcrypt"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/types"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/requestdata"
)

type JWTClaims struct {
  Role string `json:"role"`
  jwt.RegisteredClaims
}

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) (*types.User, error)
  LoginUser(ctx context.Context, email, password string) (string, string, *types.User, error)
  RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  userTokenRepo repos.UserTokenRepo
  jwtSecretKey  string
  accessTTL     time.Duration
  refreshTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    userTokenRepo: userTokenRepo,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
  if user == nil {
    return nil, fmt.Errorf("Missing user payload")
  }
  user.Email = strings.ToLower(strings.TrimSpace(user.Email))
  user.Name = strings.TrimSpace(user.Name)
  if user.Email == "" || user.Password == "" || user.Name == "" {
    return nil, fmt.Errorf("Name, email and password are required")
  }
  if user.Role == "" {
    user.Role = types.RoleFieldEngineer
  }
  if existing, _ := as.userRepo.GetByEmail(ctx, nil, user.Email); existing != nil {
    return nil, fmt.Errorf("Email already registered")
  }
  hashed, hErr := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if hErr != nil {
    return nil, fmt.Errorf("Failed to hash password: %w", hErr)
  }
  user.Password = string(hashed)
  // New accounts wait for an administrator to approve them.
  user.IsApproved = false
  user.IsActive = true
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user.ID = uuid.New()
    if _, cErr := as.userRepo.Create(ctx, tx, user); cErr != nil {
      return fmt.Errorf("Failed to create user in postgres: %w", cErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, *types.User, error) {
  email = strings.ToLower(strings.TrimSpace(email))
  if email == "" || password == "" {
    return "", "", nil, fmt.Errorf("Email and password are required")
  }

  user, uErr := as.userRepo.GetByEmail(ctx, nil, email)
  if uErr != nil || user == nil {
    return "", "", nil, fmt.Errorf("Invalid email or password")
  }
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    return "", "", nil, fmt.Errorf("Invalid email or password")
  }
  if !user.IsActive {
    return "", "", nil, fmt.Errorf("Account is deactivated")
  }
  if !user.IsApproved {
    return "", "", nil, fmt.Errorf("Account is pending approval")
  }

  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := as.userTokenRepo.DeleteExpired(ctx, tx); dErr != nil {
      return fmt.Errorf("Failed to prune expired tokens: %w", dErr)
    }
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("Generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, ctErr := as.userTokenRepo.Create(ctx, tx, &userToken); ctErr != nil {
      as.log.Warn("Create user token error", "error", ctErr)
      return fmt.Errorf("Create user token error: %w", ctErr)
    }
    return nil
  }); err != nil {
    return "", "", nil, err
  }
  return accessToken, refreshToken, user, nil
}

func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
  if refreshToken == "" {
    return "", "", fmt.Errorf("Refresh token is required")
  }

  var accessToken string
  var newRefreshToken string
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    existingToken, ftErr := as.userTokenRepo.GetByRefreshToken(ctx, tx, refreshToken)
    if ftErr != nil || existingToken == nil {
      return fmt.Errorf("Invalid refresh token")
    }
    if existingToken.ExpiresAt.Before(time.Now()) {
      if dtErr := as.userTokenRepo.DeleteByID(ctx, tx, existingToken.ID); dtErr != nil {
        as.log.Warn("Refresh token expired, error deleting", "error", dtErr)
      }
      return fmt.Errorf("Refresh token expired")
    }
    user, uErr := as.userRepo.GetByID(ctx, tx, existingToken.UserID)
    if uErr != nil || user == nil {
      return fmt.Errorf("No user found for the given refresh token")
    }
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("Failed to generate new access token: %w", genErr)
    }
    accessToken = tok
    newRefreshToken = uuid.New().String()
    newUserToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      RefreshToken: newRefreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, cErr := as.userTokenRepo.Create(ctx, tx, &newUserToken); cErr != nil {
      return fmt.Errorf("Failed to create new user token: %w", cErr)
    }
    if dErr := as.userTokenRepo.DeleteByID(ctx, tx, existingToken.ID); dErr != nil {
      return fmt.Errorf("Failed to remove old refresh token: %w", dErr)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("No request data found in context")
  }
  return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := as.userTokenRepo.DeleteByUserID(ctx, tx, rd.UserID); dErr != nil {
      as.log.Warn("Error deleting user tokens", "error", dErr)
      return fmt.Errorf("Error deleting user tokens: %w", dErr)
    }
    return nil
  })
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  claims := JWTClaims{
    Role: user.Role,
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.String(),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, fmt.Errorf("Missing token")
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("Failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, fmt.Errorf("Invalid or expired JWT token")
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    return ctx, fmt.Errorf("Invalid user id in token: %w", err)
  }
  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
    Role:        claims.Role,
  }
  ctx = requestdata.WithRequestData(ctx, rd)
  return ctx, nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}
