package attendance

import "context"

type AttendanceService interface {
	TimeIn(ctx context.Context, req TimeInRequest) (AttendanceResponse, error)
	TimeOut(ctx context.Context, req TimeOutRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Approve(ctx context.Context, id string) (AttendanceResponse, error)
	Reject(ctx context.Context, id string) (AttendanceResponse, error)
	ApproveOvertime(ctx context.Context, id string) (AttendanceResponse, error)
	RejectOvertime(ctx context.Context, id string) (AttendanceResponse, error)
	Archive(ctx context.Context, id string) error
}
