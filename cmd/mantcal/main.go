package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lsoto/mantcal/internal/cli"
	"github.com/lsoto/mantcal/internal/errors"
	"github.com/lsoto/mantcal/internal/logger"
	"github.com/lsoto/mantcal/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/mantcal/mantcal.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize mantcal storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login    cli.LoginCmd    `cmd:"" help:"Log in."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Log out."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the logged-in user."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show the monthly calendar."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks on the store."`
	Task     struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Edit   cli.TaskEditCmd   `cmd:"" help:"Edit a task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage calendar tasks."`
	Machine struct {
		Add    cli.MachineAddCmd    `cmd:"" help:"Register a machine."`
		List   cli.MachineListCmd   `cmd:"" help:"List machines."`
		Show   cli.MachineShowCmd   `cmd:"" help:"Show a machine with its maintenance history."`
		Edit   cli.MachineEditCmd   `cmd:"" help:"Edit a machine."`
		Delete cli.MachineDeleteCmd `cmd:"" help:"Delete a machine."`
	} `cmd:"" help:"Manage the machine registry."`
	Maintenance struct {
		Add    cli.MaintenanceAddCmd    `cmd:"" help:"Record a maintenance."`
		List   cli.MaintenanceListCmd   `cmd:"" help:"List maintenance history."`
		Edit   cli.MaintenanceEditCmd   `cmd:"" help:"Edit a maintenance record."`
		Delete cli.MaintenanceDeleteCmd `cmd:"" help:"Delete a maintenance record."`
	} `cmd:"" help:"Manage maintenance history."`
	Request struct {
		Add     cli.RequestAddCmd     `cmd:"" help:"File a maintenance request."`
		List    cli.RequestListCmd    `cmd:"" help:"List requests."`
		Show    cli.RequestShowCmd    `cmd:"" help:"Show a request."`
		Edit    cli.RequestEditCmd    `cmd:"" help:"Edit a request."`
		Resolve cli.RequestResolveCmd `cmd:"" help:"Set or clear the resolution date."`
		Delete  cli.RequestDeleteCmd  `cmd:"" help:"Delete a request."`
	} `cmd:"" help:"Manage maintenance requests."`
	Budget struct {
		Add    cli.BudgetAddCmd    `cmd:"" help:"Add a budget."`
		List   cli.BudgetListCmd   `cmd:"" help:"List budgets."`
		Edit   cli.BudgetEditCmd   `cmd:"" help:"Edit a budget."`
		Export cli.BudgetExportCmd `cmd:"" help:"Export a budget document."`
		Delete cli.BudgetDeleteCmd `cmd:"" help:"Delete a budget."`
	} `cmd:"" help:"Manage budgets."`
	Part struct {
		Add    cli.PartAddCmd    `cmd:"" help:"Add a spare part."`
		List   cli.PartListCmd   `cmd:"" help:"List spare parts."`
		Edit   cli.PartEditCmd   `cmd:"" help:"Edit a spare part."`
		Delete cli.PartDeleteCmd `cmd:"" help:"Delete a spare part."`
	} `cmd:"" help:"Manage spare parts."`
	Tool struct {
		Add    cli.ToolAddCmd    `cmd:"" help:"Add a tool."`
		List   cli.ToolListCmd   `cmd:"" help:"List tools."`
		Edit   cli.ToolEditCmd   `cmd:"" help:"Edit a tool."`
		Delete cli.ToolDeleteCmd `cmd:"" help:"Delete a tool."`
	} `cmd:"" help:"Manage tools."`
	Provider struct {
		Add    cli.ProviderAddCmd    `cmd:"" help:"Add a provider."`
		List   cli.ProviderListCmd   `cmd:"" help:"List providers."`
		Edit   cli.ProviderEditCmd   `cmd:"" help:"Edit a provider."`
		Delete cli.ProviderDeleteCmd `cmd:"" help:"Delete a provider."`
	} `cmd:"" help:"Manage service providers."`
	Template struct {
		Add    cli.TemplateAddCmd    `cmd:"" help:"Add a document template."`
		List   cli.TemplateListCmd   `cmd:"" help:"List templates."`
		Export cli.TemplateExportCmd `cmd:"" help:"Export a template to a file."`
		Delete cli.TemplateDeleteCmd `cmd:"" help:"Delete a template."`
	} `cmd:"" help:"Manage document templates."`
	User struct {
		Add    cli.UserAddCmd    `cmd:"" help:"Add a user."`
		List   cli.UserListCmd   `cmd:"" help:"List users."`
		Edit   cli.UserEditCmd   `cmd:"" help:"Edit a user."`
		Delete cli.UserDeleteCmd `cmd:"" help:"Delete a user."`
	} `cmd:"" help:"Manage the user directory."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mantcal"),
		kong.Description("Maintenance calendar and asset registry for the plant floor"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Storage engine follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}
	errors.Fatal(ctx.Run(appCtx))
}
