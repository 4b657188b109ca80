package client

import "fmt"

// All resource paths are scoped under the numeric account and carry the
// ".json" suffix the API requires. Resources that live inside a project
// sit under its "bucket" path.

func (c *Client) accountPath(format string, args ...interface{}) string {
	return fmt.Sprintf("/%d", c.accountID) + fmt.Sprintf(format, args...)
}

func (c *Client) bucketPath(projectID int64, format string, args ...interface{}) string {
	return fmt.Sprintf("/%d/buckets/%d", c.accountID, projectID) + fmt.Sprintf(format, args...)
}
