package job

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/viglianco/go-sales-ledger/internal/common"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	v1ledger "github.com/viglianco/go-sales-ledger/internal/deliveries/job/v1/ledger"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

var ErrJobNotFound = errors.New("invalid version or job name")

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag models.JobFlag) error

type Job struct {
	Routes JobRoutes
}

func New(srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1ledger.Routes(srv.SalesLedger),
		// add other version routes
	}

	return &Job{jobRoutes}
}

// List returns the registered jobs as "version/name", sorted.
func (j *Job) List() []string {
	var out []string
	for version, jobs := range j.Routes {
		for name := range jobs {
			out = append(out, version+"/"+name)
		}
	}
	sort.Strings(out)
	return out
}

// Start runs one job. Its outcome is logged with the [JOB] tag and returned.
func (j *Job) Start(ctx context.Context, flag models.JobFlag) (err error) {
	started := time.Now()
	ctx = log.EnsureCorrelationID(ctx)
	defer func() {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, started, err)
	}()

	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		return ErrJobNotFound
	}

	runningDate := time.Now()
	if flag.Date != "" {
		runningDate, err = time.Parse(common.DateFormatYYYYMMDD, flag.Date)
		if err != nil {
			return common.ErrInvalidFormatDate
		}
	}

	return fn(ctx, runningDate, flag)
}
