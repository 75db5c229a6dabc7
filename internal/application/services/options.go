package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/config"
)

// ManagerOption customises how a data manager stamps new and changed records
type ManagerOption func(*managerOptions)

type managerOptions struct {
	clock            func() time.Time
	newID            func() string
	createdBy        string
	updatedBy        string
	defaultGrantName string
}

func defaultManagerOptions() managerOptions {
	return managerOptions{
		clock:            time.Now,
		newID:            uuid.NewString,
		createdBy:        entities.DefaultCreator,
		updatedBy:        entities.DefaultActor,
		defaultGrantName: entities.SampleGrantName,
	}
}

func buildManagerOptions(opts []ManagerOption) managerOptions {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now for creation and update stamps
func WithClock(clock func() time.Time) ManagerOption {
	return func(o *managerOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithIDGenerator replaces the UUID generator for new records
func WithIDGenerator(newID func() string) ManagerOption {
	return func(o *managerOptions) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// WithActor sets who is recorded as creating and updating reports
func WithActor(createdBy, updatedBy string) ManagerOption {
	return func(o *managerOptions) {
		if createdBy != "" {
			o.createdBy = createdBy
		}
		if updatedBy != "" {
			o.updatedBy = updatedBy
		}
	}
}

// WithDefaultGrantName sets the grant name shown when the session has none
func WithDefaultGrantName(name string) ManagerOption {
	return func(o *managerOptions) {
		if name != "" {
			o.defaultGrantName = name
		}
	}
}

// OptionsFromConfig maps the reports configuration onto manager options
func OptionsFromConfig(cfg config.ReportsConfig) []ManagerOption {
	return []ManagerOption{
		WithActor(cfg.CreatedBy, cfg.UpdatedBy),
		WithDefaultGrantName(cfg.DefaultGrantName),
	}
}
