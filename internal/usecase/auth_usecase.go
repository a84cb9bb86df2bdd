package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/validator"

	"github.com/golang-jwt/jwt/v4"
)

// AuthUsecaseはログインユーザーの解決を1か所にまとめる。
// トークンはバックエンドが発行し、ここではローカル検証だけ行う。
type AuthUsecase struct {
	cfg     config.Config
	auth    repository.AuthRepository
	actions *Actions
}

func NewAuthUsecase(cfg config.Config, auth repository.AuthRepository, actions *Actions) *AuthUsecase {
	return &AuthUsecase{
		cfg:     cfg,
		auth:    auth,
		actions: actions,
	}
}

// Resolveはトークンを検証して Identity を返す。
// 署名・期限・ユーザーIDのどれかが駄目なら ErrAuthenticationRequired
func (u *AuthUsecase) Resolve(rawToken string) (model.Identity, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return model.Identity{}, ErrAuthenticationRequired
	}

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		//HS256/HS512だけ許可
		if t.Method != jwt.SigningMethodHS256 && t.Method != jwt.SigningMethodHS512 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return model.Identity{}, ErrAuthenticationRequired
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, ErrAuthenticationRequired
	}

	//user_idは id → sub の順で探す
	userID, err := parseUserID(claims["id"])
	if err != nil {
		userID, err = parseUserID(claims["sub"])
	}
	if err != nil || userID <= 0 {
		return model.Identity{}, ErrAuthenticationRequired
	}

	role, ok := model.ParseRole(claimString(claims, "role"))
	if !ok {
		role = model.RoleUser
	}

	return model.Identity{
		UserID: userID,
		Name:   claimString(claims, "name"),
		Email:  claimString(claims, "email"),
		Role:   role,
		Token:  rawToken,
	}, nil
}

// Loginはバックエンドで認証し、cookieに入れるトークンを返す
func (u *AuthUsecase) Login(ctx context.Context, raw Fields) (State, string) {
	var token string
	st := RunAction(ctx, u.actions, "auth.login", raw, validator.Login,
		func(ctx context.Context, in model.LoginRequest) (model.User, error) {
			in.Email = validator.NormalizeEmail(in.Email)
			res, err := u.auth.Login(ctx, in)
			if err != nil {
				return model.User{}, err
			}
			t, err := u.accept(res)
			if err != nil {
				return model.User{}, err
			}
			token = t
			return res.User, nil
		},
	)
	return st, token
}

// Registerは登録してそのままログイン状態にする
func (u *AuthUsecase) Register(ctx context.Context, raw Fields) (State, string) {
	var token string
	st := RunAction(ctx, u.actions, "auth.register", raw, validator.Register,
		func(ctx context.Context, in model.RegisterRequest) (model.User, error) {
			in.Name = strings.TrimSpace(in.Name)
			in.Email = validator.NormalizeEmail(in.Email)
			res, err := u.auth.Register(ctx, in)
			if err != nil {
				return model.User{}, err
			}
			// トークンを返さないバックエンドもある（その場合はログイン画面へ）
			if res.Token == "" {
				return res.User, nil
			}
			t, err := u.accept(res)
			if err != nil {
				return model.User{}, err
			}
			token = t
			return res.User, nil
		},
	)
	return st, token
}

// Logoutはバックエンドへの通知だけ best-effort（cookie削除はhandler）
func (u *AuthUsecase) Logout(ctx context.Context, id model.Identity) State {
	if id.IsAuthenticated() {
		if err := u.auth.Logout(ctx); err != nil {
			u.actions.Log.WithError(err).WithField("user_id", id.UserID).Warn("backend logout failed")
		}
	}
	u.actions.observe("auth.logout", "success")
	return State{Success: true, Errors: map[string][]string{}}
}

// 受け取ったトークンが自分で検証できるかを確認する
func (u *AuthUsecase) accept(res model.AuthResult) (string, error) {
	if res.Token == "" {
		return "", errors.New("Login failed: no token received")
	}
	if _, err := u.Resolve(res.Token); err != nil {
		return "", errors.New("Login failed: received an invalid token")
	}
	return res.Token, nil
}

// user_idをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid user id")
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
