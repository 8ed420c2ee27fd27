// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package setter builds a release binary and prepends its output directory to
// PATH.
//
// A run always starts with the build. The build's exit status is only logged
// unless Config.CheckBuild is set. The output directory is then resolved
// against the working directory and handed to the platform's path-mutation
// command.
//
// With Config.ContainErrors set, a failure to construct or execute the
// path-mutation command is printed as
//
//	Error setting path: <error>, please set it manually.
//
// and the run still succeeds. An unsupported platform is never contained: its
// diagnostic is printed and a *platform.UnsupportedError is returned.
package setter
