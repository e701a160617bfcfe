// Package config loads pont-config.json.
//
// A minimal configuration names one origin:
//
//	{
//	  "originUrl": "https://petstore.swagger.io/v2/swagger.json",
//	  "outDir": "./src/service"
//	}
//
// Several origins are listed under "origins"; each entry overrides
// originUrl, originType, name and usingOperationId and inherits every other
// option from the top level. Relative output directories resolve against
// the directory holding the configuration file.
//
// PONT_OUT_DIR, PONT_POLLING_TIME and PONT_USING_OPERATION_ID override the
// corresponding options. Invalid environment values are logged and ignored.
package config
