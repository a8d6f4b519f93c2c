/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package queryrunner

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
)

type MockQueryRunnerWithSuccessfulResponse struct {
	StartQueryExecutionInputs []*athena.StartQueryExecutionInput
}

type MockQueryRunnerWithErrorResponse struct{}

func (runner *MockQueryRunnerWithSuccessfulResponse) StartQueryExecution(ctx context.Context, input *athena.StartQueryExecutionInput) (*athena.StartQueryExecutionOutput, error) {
	runner.StartQueryExecutionInputs = append(runner.StartQueryExecutionInputs, input)

	return &athena.StartQueryExecutionOutput{
		QueryExecutionId: aws.String("the-best-query-execution"),
	}, nil
}

func (runner *MockQueryRunnerWithErrorResponse) StartQueryExecution(ctx context.Context, input *athena.StartQueryExecutionInput) (*athena.StartQueryExecutionOutput, error) {
	return nil, errors.New("InvalidRequestException: query syntax error")
}
