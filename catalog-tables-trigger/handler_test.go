/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package main

import (
	"context"
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/testutil/invoker"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/testutil/responder"
	"github.com/stretchr/testify/assert"
	"testing"
)

const testFunctionArn = "arn:aws:lambda:us-east-1:123456789012:function:table-creator"

func testEvent(requestType cfn.RequestType) cfn.Event {
	return cfn.Event{
		RequestType:       requestType,
		RequestID:         "the-best-request-id",
		ResponseURL:       "https://cloudformation-custom-resource-response.s3.amazonaws.com/the-best-callback",
		LogicalResourceID: "CatalogTables",
		StackID:           "arn:aws:cloudformation:us-east-1:123456789012:stack/data-catalog/guid",
		ResourceProperties: map[string]interface{}{
			TableCreatorFunctionProperty: testFunctionArn,
		},
	}
}

func TestCatalogTablesTriggerHandler_CreateSuccess(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`{"statusCode": 200, "body": {"message": "Processed 3 tables. 3 succeeded, 0 failed"}}`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// Verify the table creator was invoked synchronously, exactly once
	assert.Equal(t, []string{testFunctionArn}, mockInvoker.InvokedFunctions, "Table creator should be invoked once")

	// Verify exactly one response was sent
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusSuccess, mockResponder.Responses[0].Status)
	assert.Equal(t, map[string]interface{}{"Message": "Tables created successfully"}, mockResponder.Responses[0].Data)
}

func TestCatalogTablesTriggerHandler_UpdateSuccess(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`{"statusCode": 200}`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestUpdate))
	if err != nil {
		t.Error(err)
	}

	// Update follows the same path as Create
	assert.Equal(t, []string{testFunctionArn}, mockInvoker.InvokedFunctions, "Table creator should be invoked once")
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusSuccess, mockResponder.Responses[0].Status)
}

func TestCatalogTablesTriggerHandler_CreateReportsCreatorError(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`{"statusCode": 500, "body": {"error": "bucket not found"}}`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// Verify the creator's error is surfaced in the failure
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Equal(t, map[string]interface{}{"Error": "Table creation failed: bucket not found"}, mockResponder.Responses[0].Data)
}

func TestCatalogTablesTriggerHandler_CreateDefaultsToUnknownError(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`{"statusCode": 500}`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// A non-200 status with no error key falls back to the default error
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Equal(t, map[string]interface{}{"Error": "Table creation failed: Unknown error"}, mockResponder.Responses[0].Data)
}

func TestCatalogTablesTriggerHandler_CreateWithNonMappingBody(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`{"statusCode": 500, "body": "whoopsies"}`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// A body that is not a mapping also falls back to the default error
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Equal(t, map[string]interface{}{"Error": "Table creation failed: Unknown error"}, mockResponder.Responses[0].Data)
}

func TestCatalogTablesTriggerHandler_CreateWithMalformedPayload(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`this is not json`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// A payload that cannot be parsed is a fault and must be surfaced
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Contains(t, mockResponder.Responses[0].Data["Error"], "could not parse table creator response")
}

func TestCatalogTablesTriggerHandler_CreateWithInvocationFault(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithErrorResponse{}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// The fault's description is surfaced to the operator
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Contains(t, mockResponder.Responses[0].Data["Error"], "function not found")
}

func TestCatalogTablesTriggerHandler_CreateWithFunctionError(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithFunctionError{
		FunctionError: "Unhandled",
		Payload:       []byte(`{"errorMessage": "Missing required environment variables: DATABASE_NAME", "errorType": "MissingEnvironmentVariablesException"}`),
	}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))
	if err != nil {
		t.Error(err)
	}

	// The function error payload is simplified before being reported
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Equal(t, map[string]interface{}{"Error": "Table creation failed: Missing required environment variables: DATABASE_NAME"}, mockResponder.Responses[0].Data)
}

func TestCatalogTablesTriggerHandler_CreateWithMissingFunctionProperty(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Create test request without the TableCreatorFunction property
	testRequest := testEvent(cfn.RequestCreate)
	testRequest.ResourceProperties = map[string]interface{}{}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testRequest)
	if err != nil {
		t.Error(err)
	}

	// Verify nothing was invoked and the failure was reported
	assert.Empty(t, mockInvoker.InvokedFunctions, "No invocation should be made")
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Contains(t, mockResponder.Responses[0].Data["Error"], "TableCreatorFunction")
}

func TestCatalogTablesTriggerHandler_Delete(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithErrorResponse{}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestDelete))
	if err != nil {
		t.Error(err)
	}

	// Delete makes no remote call and always succeeds
	assert.Empty(t, mockInvoker.InvokedFunctions, "No invocation should be made on delete")
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusSuccess, mockResponder.Responses[0].Status)
	assert.Contains(t, mockResponder.Responses[0].Data["Message"], "Delete request processed")
}

func TestCatalogTablesTriggerHandler_UnsupportedRequestType(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{}
	mockResponder := &responder.MockResponder{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestType("Rollback")))
	if err != nil {
		t.Error(err)
	}

	// Unsupported request types are acknowledged with a failure instead of
	// leaving the stack waiting for its own timeout
	assert.Empty(t, mockInvoker.InvokedFunctions, "No invocation should be made")
	assert.Len(t, mockResponder.Responses, 1, "Exactly one response should be sent")
	assert.Equal(t, cfn.StatusFailed, mockResponder.Responses[0].Status)
	assert.Equal(t, map[string]interface{}{"Error": "unsupported request type: Rollback"}, mockResponder.Responses[0].Data)
}

func TestCatalogTablesTriggerHandler_ResponderFailure(t *testing.T) {

	// Create mock Invoker and Responder facades
	mockInvoker := &invoker.MockInvokerWithSuccessfulResponse{
		Payload: []byte(`{"statusCode": 200}`),
	}
	mockResponder := &responder.MockResponderWithErrorResponse{}

	// Create a test instance of the Lambda function
	testHandler := CatalogTablesTriggerHandler{
		lambdaInvoker: mockInvoker,
		responder:     mockResponder,
	}

	// Send the test request
	err := testHandler.HandleRequest(context.Background(), testEvent(cfn.RequestCreate))

	// A callback delivery failure is returned so the runtime records the fault
	assert.Error(t, err)
}
