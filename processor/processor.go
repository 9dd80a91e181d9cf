// Package processor provides content processing implementations.
package processor

import sanzang "github.com/yaoguai/sanzang-lib"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = sanzang.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = sanzang.TextNode
