/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/athenaquery"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/awsconfig"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/gluecatalog"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/tableconfig"
	"os"
)

func main() {
	// Create temporary context to initialize the handler with
	initContext := context.TODO()

	sdkConfig := awsconfig.GetSdkConfig(initContext)

	tableConfigKey := os.Getenv("TABLE_CONFIG_KEY")
	if tableConfigKey == "" {
		tableConfigKey = "table_configs.json"
	}

	handler := TableCreatorHandler{
		catalog:        gluecatalog.NewFromConfig(sdkConfig),
		queryRunner:    athenaquery.NewFromConfig(sdkConfig),
		configLoader:   tableconfig.NewS3ConfigLoader(initContext, sdkConfig, os.Getenv("DATA_ACCESS_ROLE_ARN")),
		databaseName:   os.Getenv("DATABASE_NAME"),
		dataBucket:     os.Getenv("DATA_BUCKET"),
		resultsBucket:  os.Getenv("RESULTS_BUCKET"),
		tableConfigKey: tableConfigKey,
	}

	lambda.Start(handler.HandleRequest)
}
