package cli

import (
	"fmt"

	"github.com/lsoto/mantcal/internal/auth"
	"github.com/lsoto/mantcal/internal/fileblob"
	"github.com/lsoto/mantcal/internal/models"
)

type TemplateAddCmd struct {
	Name string `arg:"" help:"Template name."`
	File string `arg:"" help:"Path to the document to embed." type:"existingfile"`
}

func (c *TemplateAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionCreate, auth.EntityTemplate); err != nil {
		return err
	}

	uri, name, err := fileblob.Encode(c.File)
	if err != nil {
		return err
	}

	t, err := ctx.Store.AddTemplate(models.Template{
		Name:     c.Name,
		File:     uri,
		Filename: name,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added template: %s (id %d)\n", t.Name, t.ID)
	return nil
}

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	templates := ctx.Store.Templates()
	if len(templates) == 0 {
		fmt.Println("No templates found")
		return nil
	}

	fmt.Println("Templates:")
	for _, t := range templates {
		fmt.Printf("  [%d] %s (%s)\n", t.ID, t.Name, orDash(t.Filename))
	}
	return nil
}

type TemplateExportCmd struct {
	ID  int    `arg:"" help:"Template id."`
	Out string `short:"o" help:"Output path (defaults to the stored filename)."`
}

func (c *TemplateExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	t, ok := ctx.Store.Template(c.ID)
	if !ok {
		return fmt.Errorf("template %d not found", c.ID)
	}

	out := c.Out
	if out == "" {
		out = t.Filename
	}
	if out == "" {
		out = fmt.Sprintf("template-%d", t.ID)
	}

	if err := fileblob.Export(t.File, out); err != nil {
		return err
	}
	fmt.Printf("Exported template to %s\n", out)
	return nil
}

type TemplateDeleteCmd struct {
	ID  int  `arg:"" help:"Template id."`
	Yes bool `short:"y" help:"Skip confirmation."`
}

func (c *TemplateDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := auth.RequireAction(ctx.Store, auth.ActionDelete, auth.EntityTemplate); err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Delete template %d?", c.ID), c.Yes) {
		fmt.Println("Cancelled")
		return nil
	}

	if err := ctx.Store.DeleteTemplate(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted template %d\n", c.ID)
	return nil
}
