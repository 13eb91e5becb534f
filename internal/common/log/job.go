package log

import (
	"context"
	"time"
)

func LogJob(ctx context.Context, jobName, version, date string, started time.Time, err error) {
	field := []Field{
		String("job-name", jobName),
		String("version", version),
		String("execution-date", date),
		Duration("elapsed", time.Since(started)),
	}
	if err != nil {
		field = append(field, String("status", "fail"), Err(err))
		Warn(ctx, "[JOB]", field...)
	} else {
		field = append(field, String("status", "success"))
		Info(ctx, "[JOB]", field...)
	}
}
