package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taqyon-labs/taqyon/internal/platform"
)

// Script file names, one per target platform family.
const (
	ShellScriptName = "build_app.sh"
	BatchScriptName = "build_app.bat"
)

// Emit writes both build helpers into destDir (the backend source tree, which
// is also the CMake source directory). When qt6Path is non-empty it is
// hardcoded into the scripts; otherwise the scripts fall back to the project
// record and finally to an interactive prompt. Returns the written paths.
func Emit(destDir, projectName, qt6Path string) ([]string, error) {
	r := strings.NewReplacer(
		"@PROJECT_NAME@", projectName,
		"@QT6_PATH@", qt6Path,
	)

	shellPath := filepath.Join(destDir, ShellScriptName)
	if err := os.WriteFile(shellPath, []byte(r.Replace(shellTemplate)), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", shellPath, err)
	}
	if err := platform.MarkExecutable(shellPath); err != nil {
		return nil, fmt.Errorf("marking %s executable: %w", shellPath, err)
	}

	batchPath := filepath.Join(destDir, BatchScriptName)
	// Batch files want CRLF line endings.
	batch := strings.ReplaceAll(r.Replace(batchTemplate), "\n", "\r\n")
	if err := os.WriteFile(batchPath, []byte(batch), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", batchPath, err)
	}

	return []string{shellPath, batchPath}, nil
}

// The shell helper. Resolution order for the Qt path: hardcoded value, the
// qt6.config.json record at the project root, interactive prompt, abort.
// The cache check compares CMAKE_HOME_DIRECTORY against the script's own
// directory, case-sensitively, and only prompts when the cache file exists
// and the paths differ.
const shellTemplate = `#!/bin/sh
# Build helper for @PROJECT_NAME@. Generated by taqyon.
set -u

SCRIPT_DIR=$(CDPATH= cd -- "$(dirname -- "$0")" && pwd)
QT6_PATH="@QT6_PATH@"

if [ -z "$QT6_PATH" ]; then
    RECORD="$SCRIPT_DIR/../qt6.config.json"
    if [ -f "$RECORD" ]; then
        QT6_PATH=$(sed -n 's/.*"qt6Path"[[:space:]]*:[[:space:]]*"\([^"]*\)".*/\1/p' "$RECORD")
    fi
fi

if [ -z "$QT6_PATH" ]; then
    printf 'Qt 6 path is not configured for @PROJECT_NAME@.\n'
    printf 'Enter the Qt 6 installation path (e.g. ~/Qt/6.7.1/gcc_64), or press Enter to abort: '
    read -r QT6_PATH
fi

if [ -z "$QT6_PATH" ]; then
    echo 'No Qt 6 path given. Set "qt6Path" in qt6.config.json, or install Qt 6 from https://www.qt.io/download and re-run.' >&2
    exit 1
fi

BUILD_DIR="$SCRIPT_DIR/build"
CACHE="$BUILD_DIR/CMakeCache.txt"
if [ -f "$CACHE" ]; then
    CACHE_HOME=$(sed -n 's/^CMAKE_HOME_DIRECTORY:INTERNAL=//p' "$CACHE")
    if [ "$CACHE_HOME" != "$SCRIPT_DIR" ]; then
        echo "The existing build cache was configured for: $CACHE_HOME"
        echo "This project now lives at:                   $SCRIPT_DIR"
        printf 'Delete build/ and reconfigure? [y/N] '
        read -r ANSWER
        case "$ANSWER" in
            y|Y) rm -rf "$BUILD_DIR" ;;
            *)
                echo "Aborting. Remove $BUILD_DIR manually to rebuild from this location." >&2
                exit 1
                ;;
        esac
    fi
fi

cmake -S "$SCRIPT_DIR" -B "$BUILD_DIR" -DCMAKE_PREFIX_PATH="$QT6_PATH" || exit $?
cmake --build "$BUILD_DIR"
exit $?
`

// The batch helper, functionally equivalent to the shell one. String
// comparison via == without /I keeps the cache check case-sensitive.
const batchTemplate = `@echo off
rem Build helper for @PROJECT_NAME@. Generated by taqyon.
setlocal EnableDelayedExpansion

set "SCRIPT_DIR=%~dp0"
if "%SCRIPT_DIR:~-1%"=="\" set "SCRIPT_DIR=%SCRIPT_DIR:~0,-1%"
set "QT6_PATH=@QT6_PATH@"

if "%QT6_PATH%"=="" (
    if exist "%SCRIPT_DIR%\..\qt6.config.json" (
        for /f tokens^=4^ delims^=^" %%A in ('findstr "qt6Path" "%SCRIPT_DIR%\..\qt6.config.json"') do set "QT6_PATH=%%A"
    )
)

if "%QT6_PATH%"=="" (
    echo Qt 6 path is not configured for @PROJECT_NAME@.
    set /p QT6_PATH="Enter the Qt 6 installation path (e.g. C:\Qt\6.7.1\msvc2019_64), or press Enter to abort: "
)

if "%QT6_PATH%"=="" (
    echo No Qt 6 path given. Set "qt6Path" in qt6.config.json, or install Qt 6 from https://www.qt.io/download and re-run. 1>&2
    exit /b 1
)

set "BUILD_DIR=%SCRIPT_DIR%\build"
set "CACHE=%BUILD_DIR%\CMakeCache.txt"
if exist "%CACHE%" (
    set "CACHE_HOME="
    for /f "tokens=1,* delims==" %%A in ('findstr /b "CMAKE_HOME_DIRECTORY:INTERNAL=" "%CACHE%"') do set "CACHE_HOME=%%B"
    set "CACHE_HOME=!CACHE_HOME:/=\!"
    if not "!CACHE_HOME!"=="%SCRIPT_DIR%" (
        echo The existing build cache was configured for: !CACHE_HOME!
        echo This project now lives at:                   %SCRIPT_DIR%
        set /p ANSWER="Delete build\ and reconfigure? [y/N] "
        if /i "!ANSWER!"=="y" (
            rmdir /s /q "%BUILD_DIR%"
        ) else (
            echo Aborting. Remove %BUILD_DIR% manually to rebuild from this location. 1>&2
            exit /b 1
        )
    )
)

cmake -S "%SCRIPT_DIR%" -B "%BUILD_DIR%" -DCMAKE_PREFIX_PATH="%QT6_PATH%"
if errorlevel 1 exit /b %errorlevel%
cmake --build "%BUILD_DIR%"
exit /b %errorlevel%
`
