package heartbeat

import (
	"app/base"
	"app/base/api"
	"app/base/utils"
	"app/tasks"
	"app/tasks/joblog"
	"fmt"
	"net/http"
	"time"
)

// the heartbeat log uses its own timestamp layout, kept for compatibility
// with consumers of the original log file
const timeFormat = "02/01/2006-15:04:05"

var (
	runLog     *joblog.Writer
	apiAddress string
	maxRetries int
)

func configure() {
	utils.ConfigureLogging()
	runLog = joblog.New(utils.Getenv("HEARTBEAT_LOG_FILE", "/tmp/crm_heartbeat_log.txt"))
	apiAddress = utils.Getenv("CRM_API_ADDRESS", "http://localhost:8080")
	maxRetries = utils.GetIntEnvOrDefault("HEARTBEAT_MAX_RETRIES", 3)
}

// RunHeartbeat appends an alive line to the heartbeat log and checks whether
// the CRM API answers its status endpoint.
func RunHeartbeat() {
	tasks.HandleContextCancel(tasks.WaitAndExit)
	configure()
	defer utils.LogPanics(true)

	message := formatHeartbeatLine(time.Now(), checkAPI())
	if err := runLog.Append(message); err != nil {
		utils.LogError("err", err.Error(), "Could not append to heartbeat run log")
		return
	}
	utils.LogInfo("message", message, "Heartbeat logged")
}

func formatHeartbeatLine(now time.Time, apiAlive bool) string {
	message := now.Format(timeFormat) + " CRM is alive"
	if apiAlive {
		return message + " (CRM API OK)"
	}
	return message + " (CRM API is unreachable)"
}

func checkAPI() bool {
	client := api.Client{HTTPClient: &http.Client{Timeout: 10 * time.Second}, Debug: tasks.UseTraceLevel}
	statusURL := apiAddress + base.CRMAPIPrefix + "/status"

	_, err := utils.HTTPCallRetry(base.Context, func() (interface{}, *http.Response, error) {
		ctx := base.Context
		resp, err := client.Request(&ctx, http.MethodGet, statusURL, nil, nil)
		if err != nil {
			return nil, resp, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, resp, fmt.Errorf("status endpoint returned %d", resp.StatusCode)
		}
		return nil, resp, nil
	}, false, maxRetries)

	if err != nil {
		utils.LogWarn("err", err.Error(), "CRM API unreachable")
		return false
	}
	return true
}
