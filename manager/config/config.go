package config

import (
	"app/base/utils"
)

var (
	// Expose export API (feature flag)
	EnableExportAPI = utils.PodConfig.GetBool("export_api", true)
	// Max number of customers accepted by the bulk create endpoint
	BulkCreateLimit = utils.PodConfig.GetInt("bulk_create_limit", 100)
	// Request timeout in seconds
	ResponseTimeout = utils.PodConfig.GetInt("response_timeout", 60)
	// Archive customers into deleted_customer ledger on API delete
	EnableDeleteLedger = utils.PodConfig.GetBool("delete_ledger", true)
)
