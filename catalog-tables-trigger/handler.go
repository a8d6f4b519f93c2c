/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/cfnresponse"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/exceptions"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/lambdafunction"
	"log"
)

// TableCreatorFunctionProperty is the resource property that names the table
// creator function to invoke on stack create and update.
const TableCreatorFunctionProperty = "TableCreatorFunction"

const tablesCreatedMessage = "Tables created successfully"

type CatalogTablesTriggerHandler struct {
	lambdaInvoker lambdafunction.Invoker
	responder     cfnresponse.Responder
}

// HandleRequest translates a CloudFormation custom resource lifecycle event
// into a single synchronous call to the table creator and acknowledges the
// outcome on the stack's callback channel. Every event, including unsupported
// ones, produces exactly one response so CloudFormation is never left waiting
// for its own timeout.
func (h CatalogTablesTriggerHandler) HandleRequest(ctx context.Context, event cfn.Event) error {
	status, reason, data := h.dispatch(ctx, event)
	return h.responder.Respond(ctx, event, status, reason, data)
}

func (h CatalogTablesTriggerHandler) dispatch(ctx context.Context, event cfn.Event) (cfn.StatusType, string, map[string]interface{}) {
	switch event.RequestType {
	case cfn.RequestCreate, cfn.RequestUpdate:
		return h.createTables(ctx, event)
	case cfn.RequestDelete:
		// Table deletion is not this component's responsibility: catalog
		// tables are deliberately left in place on stack teardown.
		log.Default().Print("delete request processed, leaving catalog tables in place")
		return cfn.StatusSuccess, "", map[string]interface{}{"Message": "Delete request processed. Catalog tables are left in place."}
	default:
		message := fmt.Sprintf("unsupported request type: %s", event.RequestType)
		log.Default().Print(message)
		return cfn.StatusFailed, message, map[string]interface{}{"Error": message}
	}
}

func (h CatalogTablesTriggerHandler) createTables(ctx context.Context, event cfn.Event) (cfn.StatusType, string, map[string]interface{}) {
	functionName, err := tableCreatorFunction(event)
	if err != nil {
		log.Default().Printf("failed to resolve table creator function: %s", err)
		message := fmt.Sprintf("Table creation failed: %s", err.Error())
		return cfn.StatusFailed, message, map[string]interface{}{"Error": message}
	}

	log.Default().Printf("invoking table creator function %s", functionName)

	invocation, err := h.lambdaInvoker.Invoke(ctx, functionName)
	if err != nil {
		log.Default().Printf("failed to invoke table creator function: %s", err)
		message := fmt.Sprintf("Table creation failed: %s", err.Error())
		return cfn.StatusFailed, message, map[string]interface{}{"Error": message}
	}

	log.Default().Printf("table creator function returned for request Id: %s", invocation.ResultMetadata.Get("RequestId"))

	if invocation.FunctionError != nil {
		errorText := SimplifyFunctionError(invocation.Payload, *invocation.FunctionError)
		log.Default().Printf("table creator function faulted: %s", errorText)
		message := fmt.Sprintf("Table creation failed: %s", errorText)
		return cfn.StatusFailed, message, map[string]interface{}{"Error": message}
	}

	outcome, err := parseCreationResult(invocation.Payload)
	if err != nil {
		log.Default().Printf("failed to parse table creator response: %s", err)
		message := fmt.Sprintf("Table creation failed: %s", err.Error())
		return cfn.StatusFailed, message, map[string]interface{}{"Error": message}
	}

	if failure, isFailure := outcome.(creationFailure); isFailure {
		log.Default().Printf("table creator reported a failure: %s", failure.errorText)
		message := fmt.Sprintf("Table creation failed: %s", failure.errorText)
		return cfn.StatusFailed, message, map[string]interface{}{"Error": message}
	}

	success := outcome.(creationSuccess)
	return cfn.StatusSuccess, "", map[string]interface{}{"Message": success.message}
}

// The creator's response body is untyped JSON; it is normalized into one of
// these two shapes immediately after parsing so nothing downstream handles the
// raw map.
type creationOutcome interface {
	isCreationOutcome()
}

type creationSuccess struct {
	message string
}

type creationFailure struct {
	errorText string
}

func (creationSuccess) isCreationOutcome() {}
func (creationFailure) isCreationOutcome() {}

type creationResult struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body"`
}

func parseCreationResult(payload []byte) (creationOutcome, error) {
	result := &creationResult{}
	if err := json.Unmarshal(payload, result); err != nil {
		return nil, exceptions.MalformedCreatorResponseException{Message: fmt.Sprintf("could not parse table creator response: %s", err)}
	}

	if result.StatusCode == 200 {
		return creationSuccess{message: tablesCreatedMessage}, nil
	}

	// A non-200 status carries the error in the body. Default when the body is
	// absent, not a mapping, or has no error key.
	errorText := "Unknown error"
	body := map[string]interface{}{}
	if err := json.Unmarshal(result.Body, &body); err == nil {
		if text, ok := body["error"].(string); ok && text != "" {
			errorText = text
		}
	}

	return creationFailure{errorText: errorText}, nil
}

func tableCreatorFunction(event cfn.Event) (string, error) {
	functionName, ok := event.ResourceProperties[TableCreatorFunctionProperty].(string)
	if !ok || functionName == "" {
		return "", exceptions.MissingResourcePropertyException{Message: fmt.Sprintf("resource property %s is required", TableCreatorFunctionProperty)}
	}

	return functionName, nil
}
