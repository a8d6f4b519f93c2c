/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/awsconfig"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/cfnresponse"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/lambdafunction"
)

func main() {
	// Create temporary context to initialize the handler with
	initContext := context.TODO()

	sdkConfig := awsconfig.GetSdkConfig(initContext)

	handler := CatalogTablesTriggerHandler{
		lambdaInvoker: lambdafunction.NewFromConfig(sdkConfig),
		responder:     cfnresponse.NewCallbackResponder(),
	}

	lambda.Start(handler.HandleRequest)
}
