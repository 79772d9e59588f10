package api

import "context"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type usernameChangeRequest struct {
	Username string `json:"username"`
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/auth/register", registerRequest{Username: username, Email: email, Password: password}, &resp)
	return resp, err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Me returns the account owning the current token.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	err := c.get(ctx, "/auth/me", nil, &user)
	return user, err
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.put(ctx, "/auth/password", passwordChangeRequest{CurrentPassword: current, NewPassword: next}, nil)
}

func (c *Client) ChangeUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := c.put(ctx, "/auth/username", usernameChangeRequest{Username: username}, &user)
	return user, err
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.delete(ctx, "/auth/profile")
}

// ToggleSubscription flips the newsletter subscription and returns the
// refreshed account.
func (c *Client) ToggleSubscription(ctx context.Context) (User, error) {
	if err := c.post(ctx, "/auth/subscription/toggle", struct{}{}, nil); err != nil {
		return User{}, err
	}
	return c.Me(ctx)
}
