// Package snowflake mints the int64 identifiers used for user and note
// records.
package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenUserID 生成用户ID
func GenUserID() int64 {
	return node.Generate().Int64()
}

// GenID 生成记录ID
func GenID() int64 {
	return node.Generate().Int64()
}
