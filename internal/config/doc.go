// Package config loads the tooltip configuration file.
//
// The configuration lives in tooltip.json (or tooltip.yaml) in the working
// directory. Every field is optional; missing fields keep the defaults of
// New.
//
// # Configuration File Structure
//
//	{
//	  "layout": {"arrowSize": 10, "clearance": 5, "minWidth": 130},
//	  "zIndexBase": 6,
//	  "placeholder": "No help available",
//	  "defaults": {"orientation": "bottom", "class": "info"},
//	  "metrics": {"namespace": "tooltip"},
//	  "log": {"level": "debug", "format": "json"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	registry := tooltip.NewRegistry(cfg.RegistryOptions(logger, nil)...)
package config
