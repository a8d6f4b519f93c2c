/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package configloader

import (
	"context"
	"errors"
	"fmt"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/tableconfig"
)

type MockLoaderWithTables struct {
	Tables      []tableconfig.TableConfig
	LoadedPaths []string
}

type MockLoaderWithErrorResponse struct{}

func (loader *MockLoaderWithTables) Load(ctx context.Context, bucket string, objectKey string) ([]tableconfig.TableConfig, error) {
	loader.LoadedPaths = append(loader.LoadedPaths, fmt.Sprintf("s3://%s/%s", bucket, objectKey))

	return loader.Tables, nil
}

func (loader *MockLoaderWithErrorResponse) Load(ctx context.Context, bucket string, objectKey string) ([]tableconfig.TableConfig, error) {
	return nil, errors.New("NoSuchKey: the specified key does not exist")
}
