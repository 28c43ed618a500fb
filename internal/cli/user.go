package cli

import (
	"errors"
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/models"
	"github.com/lsoto/mantcal/internal/storage"
	"github.com/lsoto/mantcal/internal/validation"
)

type UserAddCmd struct {
	Username string `arg:"" help:"Username."`
	Password string `arg:"" help:"Password."`
	Name     string `short:"n" help:"Display name." required:""`
	Role     string `short:"r" help:"Role (admin|manager|viewer)." default:"viewer"`
	Plant    string `short:"p" help:"Plant for manager scoping."`
}

func (c *UserAddCmd) Validate() error {
	if err := validation.Role(c.Role); err != nil {
		return err
	}
	if c.Plant != "" {
		return validation.Plant(c.Plant)
	}
	return nil
}

func (c *UserAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityUser); err != nil {
		return err
	}

	err := ctx.Store.AddUser(models.User{
		Username: c.Username,
		Password: c.Password,
		Role:     models.Role(c.Role),
		Plant:    c.Plant,
		Name:     c.Name,
	})
	if errors.Is(err, storage.ErrDuplicateUser) {
		return fmt.Errorf("username %q is already taken", c.Username)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Added user %s (%s)\n", c.Username, c.Role)
	return nil
}

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionView, auth.EntityUser); err != nil {
		return err
	}

	users := ctx.Store.Users()
	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}

	fmt.Println("Users:")
	for _, u := range users {
		fmt.Printf("  %s - %s (%s)", u.Username, u.Name, u.Role)
		if u.Plant != "" {
			fmt.Printf(" - %s", u.Plant)
		}
		fmt.Println()
	}
	return nil
}

type UserEditCmd struct {
	Username string  `arg:"" help:"Username."`
	Password *string `help:"New password."`
	Name     *string `help:"New display name."`
	Role     *string `help:"New role."`
	Plant    *string `help:"New plant."`
}

func (c *UserEditCmd) Validate() error {
	if c.Role != nil {
		if err := validation.Role(*c.Role); err != nil {
			return err
		}
	}
	if c.Plant != nil && *c.Plant != "" {
		return validation.Plant(*c.Plant)
	}
	return nil
}

func (c *UserEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionEdit, auth.EntityUser); err != nil {
		return err
	}

	u, ok := ctx.Store.User(c.Username)
	if !ok {
		logger.Debug("edit of missing user ignored", "username", c.Username)
		return nil
	}

	if c.Password != nil {
		u.Password = *c.Password
	}
	if c.Name != nil {
		u.Name = *c.Name
	}
	if c.Role != nil {
		u.Role = models.Role(*c.Role)
	}
	if c.Plant != nil {
		u.Plant = *c.Plant
	}

	if err := ctx.Store.UpdateUser(u); err != nil {
		return err
	}
	fmt.Printf("Updated user %s\n", u.Username)
	return nil
}

type UserDeleteCmd struct {
	Username string `arg:"" help:"Username."`
	Yes      bool   `short:"y" help:"Skip confirmation."`
}

func (c *UserDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	sess, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityUser)
	if err != nil {
		return err
	}
	if sess.Username == c.Username {
		return fmt.Errorf("cannot delete the logged-in user")
	}

	if !confirm(fmt.Sprintf("Delete user %s?", c.Username), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteUser(c.Username); err != nil {
		return err
	}
	fmt.Printf("Deleted user %s\n", c.Username)
	return nil
}
