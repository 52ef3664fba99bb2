package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/govops-lab/ministrydesk/pkg/utils/logging"
)

// AppConfig is the workspace reference data loaded from a TOML file. It
// seeds the departments and ministries the workflow operates on.
type AppConfig struct {
	path string

	Departments []Department `toml:"department"`
	Ministries  []Ministry   `toml:"ministry"`
}

// Department is a department entry in the configuration file
type Department struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Department is valid
func (d *Department) Validate() error {
	if d.ID == "" {
		return goerr.Wrap(ErrInvalidConfig, "department ID is required")
	}
	if d.Name == "" {
		return goerr.Wrap(ErrMissingName, "department name is required", goerr.V(DepartmentIDKey, d.ID))
	}
	return nil
}

// Ministry is a ministry entry in the configuration file
type Ministry struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Code        string `toml:"code"`
}

// Validate checks if the Ministry is valid
func (m *Ministry) Validate() error {
	if m.Name == "" {
		return goerr.Wrap(ErrMissingName, "ministry name is required", goerr.V(MinistryCodeKey, m.Code))
	}
	return nil
}

// Flags returns CLI flags for the configuration file
func (c *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the workspace configuration TOML file",
			Sources:     cli.EnvVars("MINISTRYDESK_CONFIG"),
			Destination: &c.path,
		},
	}
}

// Configure loads and validates the configuration file. A missing flag
// yields an empty configuration; a missing file is an error.
func (c *AppConfig) Configure() error {
	if c.path == "" {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return goerr.Wrap(ErrConfigNotFound, "cannot read configuration", goerr.V(ConfigPathKey, c.path))
		}
		return goerr.Wrap(err, "failed to read configuration", goerr.V(ConfigPathKey, c.path))
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "failed to parse configuration",
			goerr.V(ConfigPathKey, c.path), goerr.V("parse_error", err.Error()))
	}

	return c.Validate()
}

// Validate checks structural validity and uniqueness across entries
func (c *AppConfig) Validate() error {
	seenDept := map[string]bool{}
	for i, dept := range c.Departments {
		if err := dept.Validate(); err != nil {
			return goerr.Wrap(err, "invalid department entry", goerr.V(IndexKey, i))
		}
		if seenDept[dept.ID] {
			return goerr.Wrap(ErrDuplicateDepartmentID, "department IDs must be unique",
				goerr.V(DepartmentIDKey, dept.ID))
		}
		seenDept[dept.ID] = true
	}

	seenCode := map[string]bool{}
	for i, ministry := range c.Ministries {
		if err := ministry.Validate(); err != nil {
			return goerr.Wrap(err, "invalid ministry entry", goerr.V(IndexKey, i))
		}
		if ministry.Code != "" {
			if seenCode[ministry.Code] {
				return goerr.Wrap(ErrDuplicateMinistryCode, "ministry codes must be unique",
					goerr.V(MinistryCodeKey, ministry.Code))
			}
			seenCode[ministry.Code] = true
		}
	}

	return nil
}

// Seed creates the configured departments and ministries that do not exist
// yet. Existing records are left untouched so the file can be re-applied.
func (c *AppConfig) Seed(ctx context.Context, repo interfaces.Repository) error {
	for _, dept := range c.Departments {
		id := types.DepartmentID(dept.ID)
		if _, err := repo.Department().Get(ctx, id); err == nil {
			continue
		}
		if _, err := repo.Department().Create(ctx, &model.Department{
			ID:          id,
			Name:        dept.Name,
			Description: dept.Description,
		}); err != nil {
			return goerr.Wrap(err, "failed to seed department", goerr.V(DepartmentIDKey, dept.ID))
		}
		logging.Default().Info("Seeded department", "id", dept.ID, "name", dept.Name)
	}

	existing, err := repo.Ministry().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list ministries for seeding")
	}
	byCode := map[string]bool{}
	byName := map[string]bool{}
	for _, m := range existing {
		byCode[m.Code] = true
		byName[m.Name] = true
	}

	for _, ministry := range c.Ministries {
		if (ministry.Code != "" && byCode[ministry.Code]) || byName[ministry.Name] {
			continue
		}
		if _, err := repo.Ministry().Create(ctx, &model.Ministry{
			Name:        ministry.Name,
			Description: ministry.Description,
			Code:        ministry.Code,
			IsActive:    true,
		}); err != nil {
			return goerr.Wrap(err, "failed to seed ministry", goerr.V(MinistryCodeKey, ministry.Code))
		}
		logging.Default().Info("Seeded ministry", "name", ministry.Name, "code", ministry.Code)
	}

	return nil
}
