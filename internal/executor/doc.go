/*
Package executor performs HTTP requests on behalf of the state machine.

# Overview

The executor is given only an immutable (method, url) pair and returns the
response body as text. It never sees application state.

	exec, err := executor.New(executor.Options{Timeout: 10 * time.Second}, logger)
	if err != nil {
		return err
	}

	body, err := exec.Execute(ctx, "GET", "https://example.com/ping")

# Methods

GET, POST, PUT and DELETE are sent as-is. Any other method string,
including lower-case spellings, is sent as GET.

# Results

Any body that was read successfully is a success, whatever the status
code. Transport failures are returned as errors; callers turn them into
response text. A body that cannot be read is reported as ErrReadBody.

# Testing

Func adapts a plain function to Executor, which is how tests substitute a
fake transport.
*/
package executor
