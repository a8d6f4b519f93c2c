/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package main

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	athenatypes "github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/athenaquery"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/exceptions"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/gluecatalog"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/tableconfig"
	"github.com/google/uuid"
	"log"
	"strings"
)

type TableCreatorHandler struct {
	catalog        gluecatalog.CatalogService
	queryRunner    athenaquery.QueryRunner
	configLoader   tableconfig.Loader
	databaseName   string
	dataBucket     string
	resultsBucket  string
	tableConfigKey string
}

// TableCreatorResponse is the payload returned to callers of this function,
// notably the catalog-tables-trigger, which keys off statusCode and body.error.
type TableCreatorResponse struct {
	StatusCode int              `json:"statusCode"`
	Body       TableCreatorBody `json:"body"`
}

type TableCreatorBody struct {
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details *CreationReport `json:"details,omitempty"`
}

type CreationReport struct {
	SuccessCount int      `json:"success_count"`
	FailedTables []string `json:"failed_tables"`
	TotalTables  int      `json:"total_tables"`
}

// HandleRequest registers every table described by the configuration document
// in the data bucket. Individual table failures are collected rather than
// aborting the batch; only configuration and config-fetch faults produce a 500.
func (h TableCreatorHandler) HandleRequest(ctx context.Context) (*TableCreatorResponse, error) {
	if err := h.validateConfiguration(); err != nil {
		log.Default().Printf("configuration error: %s", err)
		return errorResponse(err), nil
	}

	log.Default().Printf("starting table creation for database %s with data bucket %s", h.databaseName, h.dataBucket)

	tableConfigs, err := h.configLoader.Load(ctx, h.dataBucket, h.tableConfigKey)
	if err != nil {
		log.Default().Printf("failed to load table configurations: %s", err)
		return errorResponse(err), nil
	}

	report := h.createTables(ctx, tableConfigs)

	message := fmt.Sprintf("Processed %d tables. %d succeeded, %d failed", report.TotalTables, report.SuccessCount, len(report.FailedTables))
	log.Default().Print(message)

	return &TableCreatorResponse{
		StatusCode: 200,
		Body: TableCreatorBody{
			Message: message,
			Details: report,
		},
	}, nil
}

func (h TableCreatorHandler) createTables(ctx context.Context, tableConfigs []tableconfig.TableConfig) *CreationReport {
	report := &CreationReport{
		TotalTables:  len(tableConfigs),
		FailedTables: []string{},
	}

	for _, config := range tableConfigs {
		if err := h.createTable(ctx, config); err != nil {
			log.Default().Printf("error creating table %s: %s", config.Name, err)
			report.FailedTables = append(report.FailedTables, config.Name)
			continue
		}

		log.Default().Printf("successfully created table: %s", config.Name)
		report.SuccessCount++
	}

	return report
}

func (h TableCreatorHandler) createTable(ctx context.Context, config tableconfig.TableConfig) error {
	if config.Query != "" {
		return h.createTableViaAthena(ctx, config)
	}

	return h.createTableViaGlue(ctx, config)
}

func (h TableCreatorHandler) createTableViaGlue(ctx context.Context, config tableconfig.TableConfig) error {
	columns := make([]gluetypes.Column, 0, len(config.Columns))
	for _, column := range config.Columns {
		columns = append(columns, gluetypes.Column{
			Name: aws.String(column.Name),
			Type: aws.String(column.Type),
		})
	}

	_, err := h.catalog.CreateTable(ctx, &glue.CreateTableInput{
		DatabaseName: aws.String(h.databaseName),
		TableInput: &gluetypes.TableInput{
			Name:        aws.String(config.Name),
			Description: aws.String(config.Description),
			TableType:   aws.String("EXTERNAL_TABLE"),
			StorageDescriptor: &gluetypes.StorageDescriptor{
				Columns:  columns,
				Location: aws.String(fmt.Sprintf("s3://%s/%s", h.dataBucket, config.Location)),
			},
		},
	})
	if gluecatalog.IsAlreadyExists(err) {
		log.Default().Printf("table %s already exists", config.Name)
		return nil
	}

	return err
}

func (h TableCreatorHandler) createTableViaAthena(ctx context.Context, config tableconfig.TableConfig) error {
	if h.resultsBucket == "" {
		return exceptions.MissingEnvironmentVariablesException{Message: "Missing required environment variables: RESULTS_BUCKET"}
	}

	query := config.RenderQuery(h.dataBucket)

	_, err := h.queryRunner.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString:        aws.String(query),
		ClientRequestToken: aws.String(uuid.New().String()),
		QueryExecutionContext: &athenatypes.QueryExecutionContext{
			Database: aws.String(h.databaseName),
		},
		ResultConfiguration: &athenatypes.ResultConfiguration{
			OutputLocation: aws.String(fmt.Sprintf("s3://%s/athena-query-results/", h.resultsBucket)),
		},
	})

	return err
}

func (h TableCreatorHandler) validateConfiguration() error {
	var missing []string
	if h.databaseName == "" {
		missing = append(missing, "DATABASE_NAME")
	}
	if h.dataBucket == "" {
		missing = append(missing, "DATA_BUCKET")
	}

	if len(missing) > 0 {
		return exceptions.MissingEnvironmentVariablesException{Message: fmt.Sprintf("Missing required environment variables: %s", strings.Join(missing, ", "))}
	}

	return nil
}

func errorResponse(err error) *TableCreatorResponse {
	return &TableCreatorResponse{
		StatusCode: 500,
		Body: TableCreatorBody{
			Error: err.Error(),
		},
	}
}
