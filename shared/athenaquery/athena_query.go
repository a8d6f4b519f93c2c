/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package athenaquery

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
)

type QueryRunner interface {
	StartQueryExecution(ctx context.Context, input *athena.StartQueryExecutionInput) (*athena.StartQueryExecutionOutput, error)
}

type AQ struct {
	Client *athena.Client
}

// NewFromConfig creates a new aws Athena client
func NewFromConfig(sdkConfig aws.Config) *AQ {
	innerClient := athena.NewFromConfig(sdkConfig)

	return &AQ{
		Client: innerClient,
	}
}

func (runner AQ) StartQueryExecution(ctx context.Context, input *athena.StartQueryExecutionInput) (*athena.StartQueryExecutionOutput, error) {
	return runner.Client.StartQueryExecution(ctx, input)
}
