package run

import (
	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/accept"
	"github.com/jonwraymond/lcdebug/printer"
)

// Config controls acceptance, printing, and logging behavior.
type Config struct {
	// Acceptance

	// Acceptors binds parsed values to parameters.
	// Defaults to accept.Default().
	Acceptors *accept.Registry

	// AcceptStrategies are registered on Acceptors after the defaults.
	AcceptStrategies []accept.Strategy

	// Printing

	// Printers renders results.
	// Defaults to printer.Default().
	Printers *printer.Registry

	// PrintStrategies are registered on Printers after the defaults.
	PrintStrategies []printer.Strategy

	// Pipeline

	// Stages run after the built-in parse and match stages of equal order.
	Stages []Stage

	// Logger receives per-line diagnostics.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// applyDefaults sets default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Acceptors == nil {
		c.Acceptors = accept.Default()
	}
	if c.Printers == nil {
		c.Printers = printer.Default()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	c.Acceptors.Register(c.AcceptStrategies...)
	c.Printers.Register(c.PrintStrategies...)
}

// ConfigOption is a functional option for configuring a Runner.
type ConfigOption func(*Config)

// WithAcceptRegistry sets the acceptance registry.
func WithAcceptRegistry(reg *accept.Registry) ConfigOption {
	return func(c *Config) {
		c.Acceptors = reg
	}
}

// WithAcceptStrategies adds caller-supplied acceptance strategies.
func WithAcceptStrategies(s ...accept.Strategy) ConfigOption {
	return func(c *Config) {
		c.AcceptStrategies = append(c.AcceptStrategies, s...)
	}
}

// WithPrintRegistry sets the printer registry.
func WithPrintRegistry(reg *printer.Registry) ConfigOption {
	return func(c *Config) {
		c.Printers = reg
	}
}

// WithPrintStrategies adds caller-supplied printing strategies.
func WithPrintStrategies(s ...printer.Strategy) ConfigOption {
	return func(c *Config) {
		c.PrintStrategies = append(c.PrintStrategies, s...)
	}
}

// WithStage adds a pipeline stage.
func WithStage(s Stage) ConfigOption {
	return func(c *Config) {
		if s != nil {
			c.Stages = append(c.Stages, s)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = l
	}
}
