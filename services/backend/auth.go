package backendsvc

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/session"
)

// AdminLoginRequest is posted to /admin_login.
type AdminLoginRequest struct {
	AdminID  string `json:"admin_id"`
	Password string `json:"password"`
}

// AdminLoginResponse is the data of a successful /admin_login.
type AdminLoginResponse struct {
	AdminID core.FlexInt `json:"admin_id"`
}

// loginRoute is where a role logs in and which field carries its identifier.
type loginRoute struct {
	endpoint string
	idField  string
}

var loginRoutes = map[session.Role]loginRoute{
	session.RoleAdmin:      {endpoint: "/login", idField: "udise_code"},
	session.RoleSupervisor: {endpoint: "/login_supervisor", idField: "username"},
}

// PlaceholderToken is stored when the backend does not issue a token.
func PlaceholderToken(role session.Role) string {
	return "dummy-jwt-token-for-" + string(role)
}

// AdminLogin checks an admin id and password. The endpoint issues no token,
// so the result carries a placeholder.
func (c *Client) AdminLogin(ctx context.Context, in AdminLoginRequest) (session.LoginResult, error) {
	in.AdminID = core.CleanString(in.AdminID)
	if in.AdminID == "" || in.Password == "" {
		return session.LoginResult{}, validationError("Admin ID and password are required")
	}

	env, err := c.call(ctx, http.MethodPost, "/admin_login", in, http.StatusUnauthorized)
	if err != nil {
		return session.LoginResult{}, err
	}
	var data AdminLoginResponse
	if err := env.decodeData(&data, http.StatusUnauthorized); err != nil {
		return session.LoginResult{}, err
	}

	return session.LoginResult{
		Token:   PlaceholderToken(session.RoleAdmin),
		Role:    session.RoleAdmin,
		Message: "admin " + strconv.Itoa(data.AdminID.Int()),
	}, nil
}

// Login dispatches creds to the endpoint of its role.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.LoginResult, error) {
	route, ok := loginRoutes[creds.Role]
	if !ok {
		return session.LoginResult{}, validationError("Unknown role: " + string(creds.Role))
	}
	ident := core.CleanString(creds.Identifier)
	if ident == "" || creds.Password == "" {
		return session.LoginResult{}, validationError("Identifier and password are required")
	}

	payload := map[string]string{
		route.idField: ident,
		"password":    creds.Password,
		"role":        string(creds.Role),
	}
	env, err := c.call(ctx, http.MethodPost, route.endpoint, payload, http.StatusBadRequest)
	if err != nil {
		return session.LoginResult{}, err
	}

	var root struct {
		Token string `json:"token"`
		Data  struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	// data may be anything on these endpoints; only the token matters
	if err := env.decodeRoot(&root, http.StatusBadRequest); err != nil {
		c.logger.Debug("ignoring undecodable login token", err, map[string]interface{}{"role": string(creds.Role)})
	}

	res := session.LoginResult{Token: root.Token, Role: creds.Role, Message: env.Message}
	if res.Token == "" {
		res.Token = root.Data.Token
	}
	if res.Token == "" {
		res.Token = PlaceholderToken(creds.Role)
	}
	return res, nil
}
