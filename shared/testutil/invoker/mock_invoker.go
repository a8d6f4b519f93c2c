/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package invoker

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/smithy-go/middleware"
)

type MockInvokerWithSuccessfulResponse struct {
	Payload          []byte
	InvokedFunctions []string
}

type MockInvokerWithFunctionError struct {
	FunctionError    string
	Payload          []byte
	InvokedFunctions []string
}

type MockInvokerWithErrorResponse struct {
	InvokedFunctions []string
}

func (invoker *MockInvokerWithSuccessfulResponse) Invoke(ctx context.Context, functionName string) (*lambda.InvokeOutput, error) {
	invoker.InvokedFunctions = append(invoker.InvokedFunctions, functionName)

	metadata := middleware.Metadata{}
	metadata.Set("RequestId", "the-best-request")

	return &lambda.InvokeOutput{
		StatusCode:     200,
		Payload:        invoker.Payload,
		ResultMetadata: metadata,
	}, nil
}

func (invoker *MockInvokerWithFunctionError) Invoke(ctx context.Context, functionName string) (*lambda.InvokeOutput, error) {
	invoker.InvokedFunctions = append(invoker.InvokedFunctions, functionName)

	return &lambda.InvokeOutput{
		StatusCode:    200,
		FunctionError: aws.String(invoker.FunctionError),
		Payload:       invoker.Payload,
	}, nil
}

func (invoker *MockInvokerWithErrorResponse) Invoke(ctx context.Context, functionName string) (*lambda.InvokeOutput, error) {
	invoker.InvokedFunctions = append(invoker.InvokedFunctions, functionName)

	return nil, errors.New("ResourceNotFoundException: function not found")
}
