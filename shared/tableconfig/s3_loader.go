/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package tableconfig

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/awsconfig"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/exceptions"
	"log"
)

type Loader interface {
	Load(ctx context.Context, bucket string, objectKey string) ([]TableConfig, error)
}

type S3ConfigLoader struct {
	S3ClientProvider S3ClientProvider
}

type S3ClientProvider func() (*s3.Client, error)

// NewS3ConfigLoader creates a Loader that fetches the table configuration
// document from S3. When dataAccessRoleArn is set the loader assumes that role
// to read from the data bucket, otherwise it uses the function's own execution
// role credentials.
func NewS3ConfigLoader(ctx context.Context, sdkConfig aws.Config, dataAccessRoleArn string) S3ConfigLoader {
	return S3ConfigLoader{
		S3ClientProvider: func() (*s3.Client, error) {
			if dataAccessRoleArn == "" {
				return s3.NewFromConfig(sdkConfig), nil
			}

			log.Printf("Using data access role %s credentials to fetch table configurations.", dataAccessRoleArn)
			assumedRoleConfig, err := awsconfig.GetSdkConfigWithRoleArn(ctx, sdkConfig, dataAccessRoleArn)
			if err != nil {
				return nil, exceptions.TableConfigException{Message: fmt.Sprintf("Access denied while assuming data access role %s: %s", dataAccessRoleArn, err.Error())}
			}
			return s3.NewFromConfig(assumedRoleConfig), nil
		},
	}
}

func (loader S3ConfigLoader) Load(ctx context.Context, bucket string, objectKey string) ([]TableConfig, error) {
	s3Client, err := loader.S3ClientProvider()
	if err != nil {
		return nil, err
	}

	log.Default().Printf("downloading table configurations from s3://%s/%s", bucket, objectKey)

	downloadManager := manager.NewDownloader(s3Client)

	buffer := manager.NewWriteAtBuffer([]byte{})
	numBytes, err := downloadManager.Download(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, err
	}

	if numBytes < 1 {
		return nil, exceptions.TableConfigException{Message: "zero bytes were read from S3"}
	}

	return decodeTableConfigs(buffer.Bytes())
}
