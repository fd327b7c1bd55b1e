package controller

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("blocks.controller")
