package statstore

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    repo_path TEXT NOT NULL,
    total_files INTEGER NOT NULL,
    total_lines INTEGER NOT NULL,
    by_extension TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_snapshots_repo_path ON snapshots(repo_path);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`
