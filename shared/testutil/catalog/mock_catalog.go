/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package catalog

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
)

type MockCatalogServiceWithSuccessfulResponse struct {
	CreateTableInputs []*glue.CreateTableInput
}

type MockCatalogServiceWithAlreadyExistsResponse struct {
	CreateTableInputs []*glue.CreateTableInput
}

type MockCatalogServiceWithErrorResponse struct{}

// MockCatalogServiceWithFailingTable fails creation of the named table and
// succeeds for every other one.
type MockCatalogServiceWithFailingTable struct {
	FailingTable      string
	CreateTableInputs []*glue.CreateTableInput
}

func (catalog *MockCatalogServiceWithSuccessfulResponse) CreateTable(ctx context.Context, input *glue.CreateTableInput) (*glue.CreateTableOutput, error) {
	catalog.CreateTableInputs = append(catalog.CreateTableInputs, input)

	return &glue.CreateTableOutput{}, nil
}

func (catalog *MockCatalogServiceWithAlreadyExistsResponse) CreateTable(ctx context.Context, input *glue.CreateTableInput) (*glue.CreateTableOutput, error) {
	catalog.CreateTableInputs = append(catalog.CreateTableInputs, input)

	return nil, &types.AlreadyExistsException{Message: aws.String("Table already exists.")}
}

func (catalog *MockCatalogServiceWithErrorResponse) CreateTable(ctx context.Context, input *glue.CreateTableInput) (*glue.CreateTableOutput, error) {
	return nil, errors.New("AccessDeniedException: user is not authorized to perform glue:CreateTable")
}

func (catalog *MockCatalogServiceWithFailingTable) CreateTable(ctx context.Context, input *glue.CreateTableInput) (*glue.CreateTableOutput, error) {
	catalog.CreateTableInputs = append(catalog.CreateTableInputs, input)

	if input.TableInput != nil && input.TableInput.Name != nil && *input.TableInput.Name == catalog.FailingTable {
		return nil, errors.New("InvalidInputException: column type is not supported")
	}

	return &glue.CreateTableOutput{}, nil
}
