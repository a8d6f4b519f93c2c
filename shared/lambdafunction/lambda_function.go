/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package lambdafunction

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type Invoker interface {
	Invoke(ctx context.Context, functionName string) (*lambda.InvokeOutput, error)
}

type L struct {
	Client *lambda.Client
}

// NewFromConfig creates a new aws Lambda client
func NewFromConfig(sdkConfig aws.Config) *L {
	innerClient := lambda.NewFromConfig(sdkConfig)

	return &L{
		Client: innerClient,
	}
}

// Invoke calls the named function synchronously and waits for its result. The
// invocation carries no payload: the table creator reads everything it needs
// from its own environment.
func (l *L) Invoke(ctx context.Context, functionName string) (*lambda.InvokeOutput, error) {
	return l.Client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: types.InvocationTypeRequestResponse,
	})
}
