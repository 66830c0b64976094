package config_test

import (
	"runtime"
	"testing"

	"github.com/okian/campusgen/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Seed, convey.ShouldEqual, 42)
			convey.So(cfg.StudentCount, convey.ShouldEqual, 100)
			convey.So(cfg.TeacherCount, convey.ShouldEqual, 40)
			convey.So(cfg.ExpertiseMin, convey.ShouldEqual, 1)
			convey.So(cfg.ExpertiseMax, convey.ShouldEqual, 3)
			convey.So(cfg.EnrollMin, convey.ShouldEqual, 1)
			convey.So(cfg.EnrollMax, convey.ShouldEqual, 5)
			convey.So(cfg.MinCourseEnrollment, convey.ShouldEqual, 3)
			convey.So(cfg.RepairCap, convey.ShouldEqual, 100)
			convey.So(cfg.SessionsPerPairMin, convey.ShouldEqual, 1)
			convey.So(cfg.SessionsPerPairMax, convey.ShouldEqual, 3)
			convey.So(cfg.BulkSessionCount, convey.ShouldEqual, 500)
			convey.So(cfg.BoostFactor, convey.ShouldEqual, 1.5)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU()*2)
		})
	})
}
