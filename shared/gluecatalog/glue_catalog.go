/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package gluecatalog

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
)

type CatalogService interface {
	CreateTable(ctx context.Context, input *glue.CreateTableInput) (*glue.CreateTableOutput, error)
}

type GC struct {
	Client *glue.Client
}

// NewFromConfig creates a new aws Glue client
func NewFromConfig(sdkConfig aws.Config) *GC {
	innerClient := glue.NewFromConfig(sdkConfig)

	return &GC{
		Client: innerClient,
	}
}

func (catalog GC) CreateTable(ctx context.Context, input *glue.CreateTableInput) (*glue.CreateTableOutput, error) {
	return catalog.Client.CreateTable(ctx, input)
}

// IsAlreadyExists reports whether the fault indicates the table is already
// registered in the catalog. Re-registration is idempotent, so callers treat
// this as success.
func IsAlreadyExists(err error) bool {
	var alreadyExists *types.AlreadyExistsException
	return errors.As(err, &alreadyExists)
}
