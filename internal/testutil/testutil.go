// Package testutil starts a single node Cassandra cluster with ccm for the integration tests.
package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/datastax/action-table/log"
)

const Host = "127.0.0.1"

var started = false
var session *gocql.Session

// IntegrationTestsEnabled is set with RUN_INTEGRATION_TESTS=ON, ccm must be on the path.
func IntegrationTestsEnabled() bool {
	return strings.ToUpper(os.Getenv("RUN_INTEGRATION_TESTS")) == "ON"
}

func startCassandra() {
	if started {
		return
	}
	started = true
	version := cassandraVersion()
	fmt.Printf("Starting Cassandra %s\n", version)
	executeCcm(fmt.Sprintf("create test -v %s -n 1 -s -b", version))
}

func shutdownCassandra() {
	fmt.Println("Shutting down cassandra")
	executeCcm("remove")
}

func executeCcm(command string) {
	cmd := exec.Command("bash", "-c", "ccm "+command)
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		fmt.Println("Output", string(output))
	}
	PanicIfError(err)
}

func cassandraVersion() string {
	version := os.Getenv("CCM_VERSION")
	if version == "" {
		version = "3.11.6"
	}
	return version
}

// SetupIntegrationTestFixture starts the cluster and runs the given statements, typically schema and rows.
func SetupIntegrationTestFixture(queries ...string) *gocql.Session {
	startCassandra()

	cluster := gocql.NewCluster(Host)
	cluster.Timeout = 5 * time.Second
	cluster.ConnectTimeout = cluster.Timeout

	var err error
	session, err = cluster.CreateSession()
	PanicIfError(err)

	for _, query := range queries {
		PanicIfError(session.Query(query).Exec())
	}

	return session
}

func TearDownIntegrationTestFixture() {
	if session != nil {
		session.Close()
	}
	if started {
		shutdownCassandra()
	}
}

func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// TestLogger logs to stdout with TEST_TRACE=ON and discards otherwise.
func TestLogger() log.Logger {
	if strings.ToUpper(os.Getenv("TEST_TRACE")) == "ON" {
		logger, err := zap.NewDevelopment()
		PanicIfError(err)
		return log.NewZapLogger(logger)
	}

	return log.NewNopLogger()
}
