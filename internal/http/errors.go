package http

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeInvalidRequestBody = "API_1000"

	codeInvalidReportDate = "RPT_1000"
	codeReportNotFound    = "RPT_1001"

	codeInternalReportReadFailed = "RPT_9000"
)

func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}

func errInvalidReportDate(date string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportDate, fmt.Sprintf("invalid report date %q: want YYYY.MM.DD", date), cause)
}

func errReportNotFound(date string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("no report for %s", date), cause)
}

func errInternalReportReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportReadFailed, fmt.Errorf("reportReadFailed: %w", cause))
}
