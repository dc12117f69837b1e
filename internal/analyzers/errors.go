package analyzers

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

const (
	codeInvalidRequest      = "ANL_1000"
	codeLogFileNotFound     = "ANL_1001"
	codeReportAlreadyExists = "ANL_1002"
	codeErrorRatioExceeded  = "ANL_1003"

	codeInternalLogDiscoveryFailed = "ANL_9000"
	codeInternalLogReadFailed      = "ANL_9001"
	codeInternalReportStoreFailed  = "ANL_9002"
)

// errInvalidRequest returns an error for a malformed analysis request.
func errInvalidRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequest, msg, cause)
}

// errLogFileNotFound returns an error when there is no log to analyze.
func errLogFileNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogFileNotFound, "no log file to analyze", cause)
}

// errReportAlreadyExists returns an error when the log date already has a report.
func errReportAlreadyExists(date string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, fmt.Sprintf("report for %s already exists", date), cause)
}

// errErrorRatioExceeded returns an error when too many lines could not be parsed.
func errErrorRatioExceeded(ratio, limit float64) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeErrorRatioExceeded, fmt.Sprintf("unparsable line ratio %.4f exceeds limit %.4f", ratio, limit), nil)
}

func errInternalLogDiscoveryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogDiscoveryFailed, fmt.Errorf("logDiscoveryFailed: %w", cause))
}

func errInternalLogReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogReadFailed, fmt.Errorf("logReadFailed: %w", cause))
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
