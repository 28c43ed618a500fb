package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
)

type LoginCmd struct {
	Username string `arg:"" help:"Username."`
	Password string `arg:"" help:"Password."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, err := auth.Login(ctx.Store, c.Username, c.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", sess.Name, sess.Role)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := auth.Logout(ctx.Store); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, ok := ctx.Store.Session()
	if !ok {
		fmt.Println("Not logged in (read-only access)")
		return nil
	}

	fmt.Printf("%s (%s)", sess.Name, sess.Role)
	if sess.Plant != "" {
		fmt.Printf(" - %s", sess.Plant)
	}
	fmt.Println()
	return nil
}
