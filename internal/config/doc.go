// Package config provides configuration loading for rangeui tools.
//
// The configuration is stored in rangeui.json. Every key can be overridden
// from the environment with the RANGEUI_ prefix, dots replaced by
// underscores: RANGEUI_SERVER_PORT=8080, RANGEUI_LOG_LEVEL=debug.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "readTimeout": "10s",
//	    "pingInterval": "30s"
//	  },
//	  "render": {
//	    "pretty": false,
//	    "nodeIDs": true
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics",
//	    "namespace": "rangeui"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
